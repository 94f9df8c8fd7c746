//go:build wireinject
// +build wireinject

package container

import (
	"github.com/google/wire"

	"github.com/narwhalmedia/greenroom/pkg/config"
	"github.com/narwhalmedia/greenroom/pkg/interfaces"
)

// InitializeGateway creates the gateway with all dependencies
func InitializeGateway(cfg *config.Config, logger interfaces.Logger) (*GatewayContainer, func(), error) {
	wire.Build(
		ClientSet,
		ProvideEventBus,
		ServiceSet,
		wire.Struct(new(GatewayContainer), "*"),
	)
	return nil, nil, nil
}
