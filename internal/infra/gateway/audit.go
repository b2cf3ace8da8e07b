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

type auditRequest struct {
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	ActorID      string         `json:"actor_id"`
	Details      map[string]any `json:"details,omitempty"`
	Timestamp    string         `json:"timestamp"`
}

type HTTPAuditGateway struct {
	client *resty.Client
}

func NewHTTPAuditGateway(baseURL, apiKey string, timeout time.Duration) *HTTPAuditGateway {
	return &HTTPAuditGateway{client: newClient(baseURL, apiKey, timeout)}
}

func NewAuditGateway(cfg config.GatewayConfig) commands.AuditGateway {
	if cfg.AuditURL == "" {
		return LogAuditGateway{}
	}
	return NewHTTPAuditGateway(cfg.AuditURL, cfg.APIKey, cfg.Timeout)
}

func (g *HTTPAuditGateway) Record(ctx context.Context, evt commands.AuditEvent) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(auditRequest{
			EventType:    evt.Action,
			ResourceType: evt.Resource,
			ResourceID:   evt.ResourceID,
			ActorID:      evt.ActorID.String(),
			Details:      evt.Details,
			Timestamp:    evt.OccurredAt.UTC().Format(time.RFC3339),
		}).
		Post("/events")
	if err != nil {
		return fmt.Errorf("audit %s: %w", evt.Action, err)
	}
	if resp.IsError() {
		return fmt.Errorf("audit %s: service returned %d", evt.Action, resp.StatusCode())
	}
	return nil
}

// LogAuditGateway writes audit events to the application log.
type LogAuditGateway struct{}

func (LogAuditGateway) Record(ctx context.Context, evt commands.AuditEvent) error {
	slog.InfoContext(ctx, "Audit event",
		slog.String("action", evt.Action),
		slog.String("actor_id", evt.ActorID.String()),
		slog.String("resource", evt.Resource),
		slog.String("resource_id", evt.ResourceID),
		slog.Any("details", evt.Details),
	)
	return nil
}
