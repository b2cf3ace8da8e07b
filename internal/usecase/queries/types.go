package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models. Column tags are used by the read stores to scan rows directly.

type AccountView struct {
	ID        uuid.UUID  `db:"id"`
	UserID    int64      `db:"user_id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Points    int64      `db:"points"`
	Role      string     `db:"role"`
	Status    string     `db:"status"`
	LastLogin *time.Time `db:"last_login"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type BenefitView struct {
	ID              uuid.UUID `db:"id"`
	Name            string    `db:"name"`
	Detail          string    `db:"detail"`
	Cost            int64     `db:"cost"`
	ImageURL        string    `db:"image_url"`
	RequiresJourney bool      `db:"requires_journey"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// RedemptionView.RemainingPoints is the account balance when the view was
// read, not the balance at redemption time.
type RedemptionView struct {
	ID              uuid.UUID `db:"id"`
	UserID          int64     `db:"user_id"`
	BenefitID       uuid.UUID `db:"benefit_id"`
	BenefitName     string    `db:"benefit_name"`
	Points          int64     `db:"points"`
	RedeemedAt      time.Time `db:"redeemed_at"`
	UseAt           time.Time `db:"use_at"`
	Status          string    `db:"status"`
	Notes           string    `db:"notes"`
	Journey         string    `db:"journey"`
	RemainingPoints int64     `db:"remaining_points"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type BenefitSummary struct {
	Total     int64 `db:"total"`
	Active    int64 `db:"active"`
	TotalCost int64 `db:"total_cost"`
}

type RedemptionFilter struct {
	UserID    *int64
	BenefitID *uuid.UUID
	Status    string
}

type AccountFilter struct {
	Email  string
	Status string
}

type BenefitFilter struct {
	Name       string
	ActiveOnly bool
}
