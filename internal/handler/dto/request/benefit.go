package request

import (
	"points-rewards/internal/usecase/commands"
)

// CreateBenefitRequest is bound from multipart form fields; the image part is read separately.
type CreateBenefitRequest struct {
	Name            string `form:"nombre" json:"nombre" binding:"required,max=200"`
	Detail          string `form:"detalle" json:"detalle"`
	Cost            int64  `form:"valor" json:"valor" binding:"min=0"`
	RequiresJourney bool   `form:"requiere_jornada" json:"requiere_jornada"`
}

func (r CreateBenefitRequest) ToInput(img *commands.ImageUpload) commands.CreateBenefitInput {
	return commands.CreateBenefitInput{
		Name:            r.Name,
		Detail:          r.Detail,
		Cost:            r.Cost,
		RequiresJourney: r.RequiresJourney,
		Image:           img,
	}
}

type UpdateBenefitRequest struct {
	Name            *string `json:"nombre,omitempty" binding:"omitempty,max=200"`
	Detail          *string `json:"detalle,omitempty"`
	Cost            *int64  `json:"valor,omitempty" binding:"omitempty,min=0"`
	RequiresJourney *bool   `json:"requiere_jornada,omitempty"`
}

func (r UpdateBenefitRequest) ToInput() commands.UpdateBenefitInput {
	return commands.UpdateBenefitInput{
		Name:            r.Name,
		Detail:          r.Detail,
		Cost:            r.Cost,
		RequiresJourney: r.RequiresJourney,
	}
}

type ListBenefitsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Size       int    `form:"size" binding:"omitempty,min=1,max=100"`
	Name       string `form:"nombre"`
	ActiveOnly bool   `form:"activos"`
}
