package bootstrap

import (
	"points-rewards/internal/infra/gateway"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) commands.EmailGateway { return gateway.NewEmailGateway(cfg.Gateways) },
		func(cfg config.Config) commands.AuditGateway { return gateway.NewAuditGateway(cfg.Gateways) },
	),
)
