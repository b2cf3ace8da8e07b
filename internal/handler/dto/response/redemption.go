package response

import (
	"time"

	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          int64     `json:"user_id"`
	BenefitID       uuid.UUID `json:"beneficio_id"`
	BenefitName     string    `json:"beneficio_nombre,omitempty"`
	Points          int64     `json:"puntos_utilizados"`
	RedeemedAt      time.Time `json:"fecha_canje"`
	UseAt           time.Time `json:"fecha_uso"`
	Status          string    `json:"estado"`
	Notes           string    `json:"observaciones,omitempty"`
	Journey         string    `json:"jornada,omitempty"`
	RemainingPoints int64     `json:"puntos_restantes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RedemptionListResponse struct {
	Items      []RedemptionResponse `json:"canjes"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	TotalPages int                  `json:"total_pages"`
}

func FromRedemptionView(v *queries.RedemptionView) *RedemptionResponse {
	var res RedemptionResponse
	mustCopy(&res, v)
	return &res
}

func FromRedemptionPage(p *queries.PageResult[queries.RedemptionView]) *RedemptionListResponse {
	res := &RedemptionListResponse{Items: make([]RedemptionResponse, 0, len(p.Items))}
	mustCopy(res, p)
	return res
}
