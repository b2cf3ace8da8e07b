package redemption

import (
	"time"

	"github.com/google/uuid"
)

// AccountSpec is what the redemption rules need to know about the account.
type AccountSpec struct {
	UserID int64
	Active bool
	Points int64
}

type BenefitSpec struct {
	ID              uuid.UUID
	Active          bool
	Cost            int64
	RequiresJourney bool
}

type Redemption struct {
	id         uuid.UUID
	userID     int64
	benefitID  uuid.UUID
	points     int64
	redeemedAt time.Time
	useAt      time.Time
	status     Status
	notes      Notes
	journey    Journey
	createdAt  time.Time
	updatedAt  time.Time
}

// NewRedemption applies the account, benefit and date rules in a fixed order
// so the first broken rule is the one reported.
func NewRedemption(
	acc AccountSpec,
	ben BenefitSpec,
	points int64,
	redeemedAt, useAt time.Time,
	journey Journey,
	notes Notes,
	now time.Time,
) (*Redemption, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}
	if !acc.Active {
		return nil, ErrAccountInactive
	}
	if !ben.Active {
		return nil, ErrBenefitInactive
	}
	if ben.RequiresJourney && journey.IsEmpty() {
		return nil, ErrJourneyRequired
	}
	if acc.Points < points {
		return nil, ErrInsufficientPoints
	}
	if points > ben.Cost {
		return nil, ErrPointsExceedCost
	}
	redeemedAt = NormalizeTime(redeemedAt)
	useAt = NormalizeTime(useAt)
	if !useAt.After(redeemedAt) {
		return nil, ErrUseDateNotAfterStart
	}

	return &Redemption{
		id:         uuid.New(),
		userID:     acc.UserID,
		benefitID:  ben.ID,
		points:     points,
		redeemedAt: redeemedAt,
		useAt:      useAt,
		status:     StatusActive,
		notes:      notes,
		journey:    journey,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRedemption(
	id uuid.UUID,
	userID int64,
	benefitID uuid.UUID,
	points int64,
	redeemedAt, useAt time.Time,
	status Status,
	notes Notes,
	journey Journey,
	createdAt, updatedAt time.Time,
) *Redemption {
	return &Redemption{
		id:         id,
		userID:     userID,
		benefitID:  benefitID,
		points:     points,
		redeemedAt: redeemedAt,
		useAt:      useAt,
		status:     status,
		notes:      notes,
		journey:    journey,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Transition moves to the target state and returns the points to give back
// to the account (zero unless an ACTIVO redemption is canceled). Empty notes
// keep the current ones.
func (r *Redemption) Transition(to Status, notes Notes, now time.Time) (int64, error) {
	if !to.IsValid() {
		return 0, ErrInvalidStatus
	}
	var refund int64
	if ShouldRefund(r.status, to) {
		refund = r.points
	}
	r.status = to
	if !notes.IsEmpty() {
		r.notes = notes
	}
	r.updatedAt = now
	return refund, nil
}

func (r *Redemption) ID() uuid.UUID         { return r.id }
func (r *Redemption) UserID() int64         { return r.userID }
func (r *Redemption) BenefitID() uuid.UUID  { return r.benefitID }
func (r *Redemption) Points() int64         { return r.points }
func (r *Redemption) RedeemedAt() time.Time { return r.redeemedAt }
func (r *Redemption) UseAt() time.Time      { return r.useAt }
func (r *Redemption) Status() Status        { return r.status }
func (r *Redemption) Notes() Notes          { return r.notes }
func (r *Redemption) Journey() Journey      { return r.journey }
func (r *Redemption) CreatedAt() time.Time  { return r.createdAt }
func (r *Redemption) UpdatedAt() time.Time  { return r.updatedAt }
