package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/greenroom/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TMDB_API_KEY", "OLLAMA_BASE_URL", "ANTHROPIC_API_KEY", "CONFIG_PATH",
		"GREENROOM_CATALOG_API_KEY", "GREENROOM_LLM_BASE_URL", "GREENROOM_SERVICE_GRPC_PORT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_ProviderEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("OLLAMA_BASE_URL", "http://ollama:11434")
	t.Setenv("ANTHROPIC_API_KEY", "sampling-key")

	cfg, err := config.Load(config.DefaultServiceName)
	require.NoError(t, err)

	assert.Equal(t, "tmdb-key", cfg.Catalog.APIKey)
	assert.Equal(t, "http://ollama:11434", cfg.LLM.BaseURL)
	assert.Equal(t, "sampling-key", cfg.Sampling.APIKey)
	assert.Equal(t, config.DefaultCatalogBaseURL, cfg.Catalog.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, config.DefaultOllamaModel, cfg.LLM.Model)
	assert.Equal(t, config.DefaultGRPCPort, cfg.Service.GRPCPort)
}

func TestLoad_PrefixedEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "bare")
	t.Setenv("GREENROOM_CATALOG_API_KEY", "prefixed")
	t.Setenv("GREENROOM_SERVICE_GRPC_PORT", "9191")

	cfg, err := config.Load(config.DefaultServiceName)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Catalog.APIKey)
	assert.Equal(t, 9191, cfg.Service.GRPCPort)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(config.DefaultServiceName)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY not configured")
}

func TestManager_LoadsYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "greenroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  api_key: from-file
  timeout: 3s
llm:
  model: mistral:latest
events:
  enabled: true
  nats_url: nats://events:4222
`), 0o600))

	cfg := config.GetDefaults()
	require.NoError(t, config.NewManager(config.DefaultServiceName).WithPaths(path).LoadConfig(cfg))

	assert.Equal(t, "from-file", cfg.Catalog.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "mistral:latest", cfg.LLM.Model)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "nats://events:4222", cfg.Events.NATSURL)
	assert.Equal(t, config.DefaultServiceName, cfg.Events.SubjectPrefix)
}

func TestValidate(t *testing.T) {
	cfg := config.GetDefaults()
	cfg.Catalog.APIKey = "k"
	require.NoError(t, cfg.Validate())

	cfg.Service.GRPCPort = 70000
	assert.Error(t, cfg.Validate())

	cfg = config.GetDefaults()
	cfg.Catalog.APIKey = "k"
	cfg.Events.Enabled = true
	cfg.Events.NATSURL = ""
	assert.Error(t, cfg.Validate())
}

func TestToLoggerConfig(t *testing.T) {
	lc := config.LoggerConfig{Level: "warn", Format: "console", OutputPath: "stderr"}.ToLoggerConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, []string{"stderr"}, lc.OutputPaths)

	dev := config.LoggerConfig{Development: true}.ToLoggerConfig()
	assert.True(t, dev.Development)
	assert.Equal(t, "debug", dev.Level)
}
