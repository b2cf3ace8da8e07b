//go:build unit || e2e

package builder

import (
	"time"

	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type BenefitBuilder struct {
	ID              uuid.UUID
	Name            string
	Detail          string
	Cost            int64
	ImageURL        string
	RequiresJourney bool
	Active          bool
	Now             time.Time
}

func NewBenefitBuilder() *BenefitBuilder {
	return &BenefitBuilder{
		ID:     uuid.New(),
		Name:   "Día libre",
		Detail: "Un día libre a elección",
		Cost:   350,
		Active: true,
		Now:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BenefitBuilder) BuildStored() *benefit.Benefit {
	name, _ := benefit.NewName(b.Name)
	cost, _ := benefit.NewCost(b.Cost)
	image, _ := benefit.NewImageURL(b.ImageURL)
	status := benefit.StatusActive
	if !b.Active {
		status = benefit.StatusInactive
	}
	return benefit.ReconstructBenefit(b.ID, name, b.Detail, cost, image, b.RequiresJourney, status, b.Now, b.Now)
}

func (b *BenefitBuilder) BuildView() *queries.BenefitView {
	status := string(benefit.StatusActive)
	if !b.Active {
		status = string(benefit.StatusInactive)
	}
	return &queries.BenefitView{
		ID:              b.ID,
		Name:            b.Name,
		Detail:          b.Detail,
		Cost:            b.Cost,
		ImageURL:        b.ImageURL,
		RequiresJourney: b.RequiresJourney,
		Status:          status,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *BenefitBuilder) WithName(name string) *BenefitBuilder {
	b.Name = name
	return b
}

func (b *BenefitBuilder) WithCost(cost int64) *BenefitBuilder {
	b.Cost = cost
	return b
}

func (b *BenefitBuilder) RequiringJourney() *BenefitBuilder {
	b.RequiresJourney = true
	return b
}

func (b *BenefitBuilder) AsInactive() *BenefitBuilder {
	b.Active = false
	return b
}
