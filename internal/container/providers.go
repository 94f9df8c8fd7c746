package container

import (
	"github.com/google/wire"

	comparison "github.com/narwhalmedia/greenroom/internal/comparison/service"
	discovery "github.com/narwhalmedia/greenroom/internal/discovery/service"
	"github.com/narwhalmedia/greenroom/internal/infrastructure/adapters/external/anthropic"
	"github.com/narwhalmedia/greenroom/internal/infrastructure/adapters/external/ollama"
	"github.com/narwhalmedia/greenroom/internal/infrastructure/adapters/external/tmdb"
	"github.com/narwhalmedia/greenroom/internal/infrastructure/events/nats"
	grpcservice "github.com/narwhalmedia/greenroom/internal/infrastructure/grpc"
	"github.com/narwhalmedia/greenroom/internal/tools"
	"github.com/narwhalmedia/greenroom/pkg/config"
	"github.com/narwhalmedia/greenroom/pkg/events"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

// GatewayContainer holds all dependencies of the gateway process
type GatewayContainer struct {
	Config            *config.Config
	Logger            interfaces.Logger
	EventBus          *events.InMemoryEventBus
	MediaService      *discovery.MediaService
	ComparisonService *comparison.ComparisonService
	Registry          *tools.Registry
	ToolService       *grpcservice.ToolService
}

// ClientSet provides the upstream clients.
var ClientSet = wire.NewSet(
	ProvideTMDBClient,
	wire.Bind(new(discovery.CatalogClient), new(*tmdb.Client)),
	ProvideOllamaClient,
	wire.Bind(new(comparison.LLMClient), new(*ollama.Client)),
	ProvideSampler,
	wire.Bind(new(comparison.Sampler), new(*anthropic.Sampler)),
)

// ServiceSet provides the domain services and the tool surface.
var ServiceSet = wire.NewSet(
	discovery.NewMediaService,
	wire.Bind(new(discovery.MediaServiceInterface), new(*discovery.MediaService)),
	ProvideComparisonService,
	wire.Bind(new(comparison.ComparisonServiceInterface), new(*comparison.ComparisonService)),
	tools.NewGatewayRegistry,
	grpcservice.NewToolService,
)

// ProvideTMDBClient builds the catalog client from config.
func ProvideTMDBClient(cfg *config.Config) *tmdb.Client {
	return tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Timeout)
}

// ProvideOllamaClient builds the alternative backend client from config.
func ProvideOllamaClient(cfg *config.Config) *ollama.Client {
	return ollama.NewClient(cfg.LLM.BaseURL, cfg.LLM.Timeout)
}

// ProvideSampler builds the resample backend from config.
func ProvideSampler(cfg *config.Config) *anthropic.Sampler {
	return anthropic.NewSampler(cfg.Sampling.BaseURL, cfg.Sampling.APIKey, cfg.Sampling.Model, cfg.Sampling.Timeout)
}

// ProvideEventBus creates the in-process bus. When events are enabled the
// comparison events are also forwarded to NATS.
func ProvideEventBus(cfg *config.Config, logger interfaces.Logger) (*events.InMemoryEventBus, func(), error) {
	bus := events.NewInMemoryEventBus(logger)
	if !cfg.Events.Enabled {
		return bus, func() {}, nil
	}

	client, cleanup, err := nats.NewClient(cfg.Events, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := bus.Subscribe(comparison.EventComparisonCompleted, nats.NewForwarder(client, logger)); err != nil {
		cleanup()
		return nil, nil, err
	}
	return bus, cleanup, nil
}

// ProvideComparisonService wires the comparison orchestrator.
func ProvideComparisonService(
	cfg *config.Config,
	sampler comparison.Sampler,
	client comparison.LLMClient,
	bus *events.InMemoryEventBus,
	logger interfaces.Logger,
) *comparison.ComparisonService {
	return comparison.NewComparisonService(sampler, client, cfg.LLM.Model, bus, logger)
}
