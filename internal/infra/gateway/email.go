package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"points-rewards/internal/pkg/config"
	"points-rewards/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

type emailRequest struct {
	To        string         `json:"to"`
	Template  string         `json:"template"`
	Variables map[string]any `json:"variables"`
}

type emailResponse struct {
	Success bool `json:"success"`
}

// HTTPEmailGateway posts templated messages to the mail service's /send endpoint.
type HTTPEmailGateway struct {
	client *resty.Client
}

func NewHTTPEmailGateway(baseURL, apiKey string, timeout time.Duration) *HTTPEmailGateway {
	return &HTTPEmailGateway{client: newClient(baseURL, apiKey, timeout)}
}

// NewEmailGateway picks the HTTP gateway when a URL is configured and the
// logging one otherwise.
func NewEmailGateway(cfg config.GatewayConfig) commands.EmailGateway {
	if cfg.EmailURL == "" {
		return LogEmailGateway{}
	}
	return NewHTTPEmailGateway(cfg.EmailURL, cfg.APIKey, cfg.Timeout)
}

func (g *HTTPEmailGateway) SendRedemptionConfirmation(ctx context.Context, msg commands.RedemptionEmail) error {
	return g.send(ctx, emailRequest{
		To:       msg.To,
		Template: "redemption_confirmation",
		Variables: map[string]any{
			"full_name":        msg.FullName,
			"benefit_name":     msg.BenefitName,
			"points":           msg.Points,
			"use_at":           msg.UseAt.Format(time.RFC3339),
			"remaining_points": msg.RemainingPoints,
		},
	})
}

func (g *HTTPEmailGateway) SendWelcome(ctx context.Context, msg commands.AccountEmail) error {
	return g.send(ctx, emailRequest{
		To:        msg.To,
		Template:  "welcome",
		Variables: map[string]any{"full_name": msg.FullName, "email": msg.To},
	})
}

func (g *HTTPEmailGateway) SendDeactivation(ctx context.Context, msg commands.AccountEmail) error {
	return g.send(ctx, emailRequest{
		To:        msg.To,
		Template:  "user_deactivated",
		Variables: map[string]any{"full_name": msg.FullName, "email": msg.To},
	})
}

func (g *HTTPEmailGateway) send(ctx context.Context, req emailRequest) error {
	var out emailResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/send")
	if err != nil {
		return fmt.Errorf("email %s: %w", req.Template, err)
	}
	if resp.IsError() {
		return fmt.Errorf("email %s: service returned %d", req.Template, resp.StatusCode())
	}
	if !out.Success {
		return fmt.Errorf("email %s: service did not accept the message", req.Template)
	}
	return nil
}

// LogEmailGateway only logs; used when no mail service is configured.
type LogEmailGateway struct{}

func (LogEmailGateway) SendRedemptionConfirmation(ctx context.Context, msg commands.RedemptionEmail) error {
	slog.InfoContext(ctx, "Email skipped: redemption confirmation",
		slog.String("to", msg.To),
		slog.String("benefit", msg.BenefitName),
		slog.Int64("points", msg.Points),
	)
	return nil
}

func (LogEmailGateway) SendWelcome(ctx context.Context, msg commands.AccountEmail) error {
	slog.InfoContext(ctx, "Email skipped: welcome", slog.String("to", msg.To))
	return nil
}

func (LogEmailGateway) SendDeactivation(ctx context.Context, msg commands.AccountEmail) error {
	slog.InfoContext(ctx, "Email skipped: deactivation", slog.String("to", msg.To))
	return nil
}
