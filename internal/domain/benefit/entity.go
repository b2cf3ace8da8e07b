package benefit

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type Benefit struct {
	id              uuid.UUID
	name            Name
	detail          string
	cost            Cost
	image           ImageURL
	requiresJourney bool
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBenefit(name Name, detail string, cost Cost, image ImageURL, requiresJourney bool, now time.Time) *Benefit {
	return &Benefit{
		id:              uuid.New(),
		name:            name,
		detail:          detail,
		cost:            cost,
		image:           image,
		requiresJourney: requiresJourney,
		status:          StatusActive,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBenefit(
	id uuid.UUID,
	name Name,
	detail string,
	cost Cost,
	image ImageURL,
	requiresJourney bool,
	status Status,
	createdAt, updatedAt time.Time,
) *Benefit {
	return &Benefit{
		id:              id,
		name:            name,
		detail:          detail,
		cost:            cost,
		image:           image,
		requiresJourney: requiresJourney,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Patch carries optional changes; nil fields are left untouched.
type Patch struct {
	Name            *Name
	Detail          *string
	Cost            *Cost
	Image           *ImageURL
	RequiresJourney *bool
}

func (b *Benefit) Apply(p Patch, now time.Time) {
	if p.Name != nil {
		b.name = *p.Name
	}
	if p.Detail != nil {
		b.detail = *p.Detail
	}
	if p.Cost != nil {
		b.cost = *p.Cost
	}
	if p.Image != nil {
		b.image = *p.Image
	}
	if p.RequiresJourney != nil {
		b.requiresJourney = *p.RequiresJourney
	}
	b.updatedAt = now
}

func (b *Benefit) Deactivate(now time.Time) {
	b.status = StatusInactive
	b.updatedAt = now
}

func (b *Benefit) Activate(now time.Time) {
	b.status = StatusActive
	b.updatedAt = now
}

func (b *Benefit) IsActive() bool { return b.status == StatusActive }

func (b *Benefit) ID() uuid.UUID         { return b.id }
func (b *Benefit) Name() Name            { return b.name }
func (b *Benefit) Detail() string        { return b.detail }
func (b *Benefit) Cost() Cost            { return b.cost }
func (b *Benefit) Image() ImageURL       { return b.image }
func (b *Benefit) RequiresJourney() bool { return b.requiresJourney }
func (b *Benefit) Status() Status        { return b.status }
func (b *Benefit) CreatedAt() time.Time  { return b.createdAt }
func (b *Benefit) UpdatedAt() time.Time  { return b.updatedAt }
