package response

import (
	"time"

	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type BenefitResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"nombre"`
	Detail          string    `json:"detalle"`
	Cost            int64     `json:"valor"`
	ImageURL        string    `json:"imagen_url,omitempty"`
	RequiresJourney bool      `json:"requiere_jornada"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BenefitListResponse struct {
	Items      []BenefitResponse `json:"beneficios"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

type BenefitSummaryResponse struct {
	Total     int64 `json:"total_beneficios"`
	Active    int64 `json:"beneficios_activos"`
	TotalCost int64 `json:"valor_total"`
}

func FromBenefitView(v *queries.BenefitView) *BenefitResponse {
	var res BenefitResponse
	mustCopy(&res, v)
	return &res
}

func FromBenefitViews(vs []queries.BenefitView) []BenefitResponse {
	res := make([]BenefitResponse, 0, len(vs))
	mustCopy(&res, vs)
	return res
}

func FromBenefitPage(p *queries.PageResult[queries.BenefitView]) *BenefitListResponse {
	res := &BenefitListResponse{Items: make([]BenefitResponse, 0, len(p.Items))}
	mustCopy(res, p)
	return res
}

func FromBenefitSummary(s *queries.BenefitSummary) *BenefitSummaryResponse {
	return &BenefitSummaryResponse{Total: s.Total, Active: s.Active, TotalCost: s.TotalCost}
}
