package repository

import (
	"time"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	accountColumns    = []string{"id", "user_id", "email", "first_name", "last_name", "points", "role", "status", "last_login", "created_at", "updated_at"}
	benefitColumns    = []string{"id", "name", "detail", "cost", "image_url", "requires_journey", "status", "created_at", "updated_at"}
	redemptionColumns = []string{"id", "user_id", "benefit_id", "points", "redeemed_at", "use_at", "status", "notes", "journey", "created_at", "updated_at"}
)

type accountRow struct {
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

func (r accountRow) toDomain() (*account.Account, error) {
	email, err := account.NewEmail(r.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored account %s", r.ID)
	}
	first, err := account.NewName(r.FirstName)
	if err != nil {
		return nil, errs.Wrapf(err, "stored account %s", r.ID)
	}
	last, err := account.NewName(r.LastName)
	if err != nil {
		return nil, errs.Wrapf(err, "stored account %s", r.ID)
	}
	role, err := account.NewRole(r.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored account %s", r.ID)
	}
	status, err := account.NewStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored account %s", r.ID)
	}
	return account.ReconstructAccount(r.ID, r.UserID, email, first, last, r.Points, role, status, r.LastLogin, r.CreatedAt, r.UpdatedAt), nil
}

type benefitRow struct {
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

func (r benefitRow) toDomain() (*benefit.Benefit, error) {
	name, err := benefit.NewName(r.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "stored benefit %s", r.ID)
	}
	cost, err := benefit.NewCost(r.Cost)
	if err != nil {
		return nil, errs.Wrapf(err, "stored benefit %s", r.ID)
	}
	image, err := benefit.NewImageURL(r.ImageURL)
	if err != nil {
		return nil, errs.Wrapf(err, "stored benefit %s", r.ID)
	}
	status := benefit.Status(r.Status)
	if !status.IsValid() {
		return nil, errs.Wrapf(benefit.ErrInvalidStatus, "stored benefit %s", r.ID)
	}
	return benefit.ReconstructBenefit(r.ID, name, r.Detail, cost, image, r.RequiresJourney, status, r.CreatedAt, r.UpdatedAt), nil
}

type redemptionRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     int64     `db:"user_id"`
	BenefitID  uuid.UUID `db:"benefit_id"`
	Points     int64     `db:"points"`
	RedeemedAt time.Time `db:"redeemed_at"`
	UseAt      time.Time `db:"use_at"`
	Status     string    `db:"status"`
	Notes      string    `db:"notes"`
	Journey    string    `db:"journey"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r redemptionRow) toDomain() (*redemption.Redemption, error) {
	status, err := redemption.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored redemption %s", r.ID)
	}
	notes, err := redemption.NewNotes(r.Notes)
	if err != nil {
		return nil, errs.Wrapf(err, "stored redemption %s", r.ID)
	}
	journey, err := redemption.NewJourney(r.Journey)
	if err != nil {
		return nil, errs.Wrapf(err, "stored redemption %s", r.ID)
	}
	return redemption.ReconstructRedemption(r.ID, r.UserID, r.BenefitID, r.Points, r.RedeemedAt, r.UseAt, status, notes, journey, r.CreatedAt, r.UpdatedAt), nil
}
