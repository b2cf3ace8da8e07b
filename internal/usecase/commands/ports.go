package commands

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Collaborators outside the database. Only LeaveDaysProvider can fail a
// redemption; email and audit failures are logged and dropped.

type LeaveDaysProvider interface {
	AccumulatedLeaveDays(ctx context.Context, userID int64) (int, error)
}

type RedemptionEmail struct {
	To              string
	FullName        string
	BenefitName     string
	Points          int64
	UseAt           time.Time
	RemainingPoints int64
}

type AccountEmail struct {
	To       string
	FullName string
}

type EmailGateway interface {
	SendRedemptionConfirmation(ctx context.Context, msg RedemptionEmail) error
	SendWelcome(ctx context.Context, msg AccountEmail) error
	SendDeactivation(ctx context.Context, msg AccountEmail) error
}

type AuditEvent struct {
	Action     string
	ActorID    uuid.UUID
	Resource   string
	ResourceID string
	Details    map[string]any
	OccurredAt time.Time
}

type AuditGateway interface {
	Record(ctx context.Context, evt AuditEvent) error
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ImageStore interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, img ImageUpload) (string, error)
}

type RedemptionMetrics interface {
	RedemptionCreated(benefitID uuid.UUID, points int64)
	StatusChanged(from, to string)
	PointsRefunded(points int64)
}
