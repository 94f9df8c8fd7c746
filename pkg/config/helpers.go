package config

import (
	"fmt"
	"os"

	"github.com/narwhalmedia/greenroom/pkg/logger"
)

// Load reads the gateway configuration for serviceName, applying the bare
// provider variables (TMDB_API_KEY, OLLAMA_BASE_URL, ANTHROPIC_API_KEY) when
// the prefixed ones are absent.
func Load(serviceName string) (*Config, error) {
	cfg := GetDefaults()
	applyProviderEnv(cfg)
	if err := NewManager(serviceName).LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyProviderEnv seeds defaults from the provider-native environment
// variables. Prefixed variables loaded later still win.
func applyProviderEnv(cfg *Config) {
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.Catalog.APIKey = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Sampling.APIKey = v
	}
}

// GetServiceVersion returns the service version from config or environment
func GetServiceVersion(cfg *ServiceConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		return version
	}
	return "dev"
}

// GetGRPCListenAddress returns the formatted listen address for gRPC server
func GetGRPCListenAddress(cfg *ServiceConfig) string {
	return fmt.Sprintf(":%d", cfg.GRPCPort)
}

// ToLoggerConfig converts the logging section to a logger.Config.
func (c LoggerConfig) ToLoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	if c.Development {
		lc = logger.DevelopmentConfig()
	}
	if c.Level != "" {
		lc.Level = c.Level
	}
	if c.Format != "" {
		lc.Encoding = c.Format
	}
	if c.OutputPath != "" {
		lc.OutputPaths = []string{c.OutputPath}
	}
	return lc
}
