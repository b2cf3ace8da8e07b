package commands

import (
	"context"
	"log/slog"
	"time"

	"points-rewards/internal/usecase/shared"
)

// sideEffects runs the post-commit calls that must never fail the request.
type sideEffects struct {
	email EmailGateway
	audit AuditGateway
}

func (s sideEffects) send(ctx context.Context, what string, fn func(ctx context.Context) error) {
	if err := fn(ctx); err != nil {
		slog.WarnContext(ctx, "side effect failed", "what", what, "error", err.Error())
	}
}

func (s sideEffects) record(ctx context.Context, actor shared.Principal, action, resource, resourceID string, details map[string]any, now time.Time) {
	if s.audit == nil {
		return
	}
	s.send(ctx, "audit "+action, func(ctx context.Context) error {
		return s.audit.Record(ctx, AuditEvent{
			Action:     action,
			ActorID:    actor.ID,
			Resource:   resource,
			ResourceID: resourceID,
			Details:    details,
			OccurredAt: now,
		})
	})
}
