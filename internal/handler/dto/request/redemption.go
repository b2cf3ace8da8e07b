package request

import (
	"points-rewards/internal/usecase/commands"

	"github.com/google/uuid"
)

// Point and date rules are enforced by the use case so they surface with
// their own messages and details.
type CreateRedemptionRequest struct {
	UserID     int64     `json:"user_id" binding:"required,gt=0"`
	BenefitID  uuid.UUID `json:"beneficio_id" binding:"required"`
	Points     int64     `json:"puntos_utilizar"`
	RedeemedAt *DateTime `json:"fecha_canje" binding:"required" swaggertype:"string" format:"date-time"`
	UseAt      *DateTime `json:"fecha_uso" binding:"required" swaggertype:"string" format:"date-time"`
	Notes      string    `json:"observaciones,omitempty" binding:"max=500"`
	Journey    string    `json:"jornada,omitempty" binding:"max=50"`
}

func (r CreateRedemptionRequest) ToInput() commands.CreateRedemptionInput {
	return commands.CreateRedemptionInput{
		UserID:     r.UserID,
		BenefitID:  r.BenefitID,
		Points:     r.Points,
		RedeemedAt: r.RedeemedAt.value(),
		UseAt:      r.UseAt.value(),
		Notes:      r.Notes,
		Journey:    r.Journey,
	}
}

type UpdateRedemptionStatusRequest struct {
	Status string `json:"estado" binding:"required"`
	Notes  string `json:"observaciones,omitempty" binding:"max=500"`
}

func (r UpdateRedemptionStatusRequest) ToInput() commands.UpdateRedemptionStatusInput {
	return commands.UpdateRedemptionStatusInput{Status: r.Status, Notes: r.Notes}
}

type ListRedemptionsQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=100"`
	UserID    *int64 `form:"user_id" binding:"omitempty,gt=0"`
	BenefitID string `form:"beneficio_id" binding:"omitempty,uuid"`
	Status    string `form:"estado" binding:"omitempty,estado"`
}

type ListUserRedemptionsQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Size   int    `form:"size" binding:"omitempty,min=1,max=100"`
	Status string `form:"estado" binding:"omitempty,estado"`
}
