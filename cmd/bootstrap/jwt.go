package bootstrap

import (
	"context"
	"log/slog"

	"points-rewards/internal/pkg/config"
	"points-rewards/internal/pkg/jwt"
	"points-rewards/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		usecase.NewTokenValidator,
	),
)

func NewJWTService(lc fx.Lifecycle, cfg config.Config) (*jwt.Service, error) {
	var opts []jwt.Option
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}

	if cfg.JWT.JWKSURL != "" {
		jwks, err := jwt.NewJWKSClient(cfg.JWT.JWKSURL, cfg.JWT.JWKSTTL, cfg.Gateways.Timeout)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				jwks.Close()
				return nil
			},
		})
		opts = append(opts, jwt.WithKeySource(jwks))
		slog.Info("identity provider tokens enabled", slog.String("jwks_url", cfg.JWT.JWKSURL))
	}

	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, opts...), nil
}
