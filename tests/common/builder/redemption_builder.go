//go:build unit || e2e

package builder

import (
	"time"

	"points-rewards/internal/domain/redemption"
	reqdto "points-rewards/internal/handler/dto/request"
	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionBuilder struct {
	ID          uuid.UUID
	UserID      int64
	BenefitID   uuid.UUID
	BenefitName string
	Points      int64
	RedeemedAt  time.Time
	UseAt       time.Time
	Status      string
	Notes       string
	Journey     string
	Remaining   int64
}

func NewRedemptionBuilder() *RedemptionBuilder {
	redeemedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &RedemptionBuilder{
		ID:          uuid.New(),
		UserID:      42,
		BenefitID:   uuid.New(),
		BenefitName: "Día libre",
		Points:      350,
		RedeemedAt:  redeemedAt,
		UseAt:       redeemedAt.Add(7 * 24 * time.Hour),
		Status:      string(redemption.StatusActive),
		Remaining:   150,
	}
}

func (b *RedemptionBuilder) BuildStored() *redemption.Redemption {
	status, _ := redemption.ParseStatus(b.Status)
	notes, _ := redemption.NewNotes(b.Notes)
	journey, _ := redemption.NewJourney(b.Journey)
	return redemption.ReconstructRedemption(b.ID, b.UserID, b.BenefitID, b.Points,
		b.RedeemedAt, b.UseAt, status, notes, journey, b.RedeemedAt, b.RedeemedAt)
}

func (b *RedemptionBuilder) BuildView() *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:              b.ID,
		UserID:          b.UserID,
		BenefitID:       b.BenefitID,
		BenefitName:     b.BenefitName,
		Points:          b.Points,
		RedeemedAt:      b.RedeemedAt,
		UseAt:           b.UseAt,
		Status:          b.Status,
		Notes:           b.Notes,
		Journey:         b.Journey,
		RemainingPoints: b.Remaining,
		CreatedAt:       b.RedeemedAt,
		UpdatedAt:       b.RedeemedAt,
	}
}

func (b *RedemptionBuilder) BuildCreateRequest() reqdto.CreateRedemptionRequest {
	return reqdto.CreateRedemptionRequest{
		UserID:     b.UserID,
		BenefitID:  b.BenefitID,
		Points:     b.Points,
		RedeemedAt: reqdto.NewDateTime(b.RedeemedAt),
		UseAt:      reqdto.NewDateTime(b.UseAt),
		Notes:      b.Notes,
		Journey:    b.Journey,
	}
}

func (b *RedemptionBuilder) WithStatus(status string) *RedemptionBuilder {
	b.Status = status
	return b
}

func (b *RedemptionBuilder) WithPoints(points int64) *RedemptionBuilder {
	b.Points = points
	return b
}

func (b *RedemptionBuilder) WithUserID(id int64) *RedemptionBuilder {
	b.UserID = id
	return b
}

func (b *RedemptionBuilder) WithBenefitID(id uuid.UUID) *RedemptionBuilder {
	b.BenefitID = id
	return b
}

func (b *RedemptionBuilder) WithUseAt(t time.Time) *RedemptionBuilder {
	b.UseAt = t
	return b
}
