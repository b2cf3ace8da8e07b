package request

import (
	"points-rewards/internal/usecase/commands"
)

type CreateAccountRequest struct {
	UserID    int64  `json:"user_id" binding:"required,gt=0"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Role      string `json:"role,omitempty" binding:"omitempty,role"`
	Points    int64  `json:"puntos,omitempty" binding:"min=0"`
}

func (r CreateAccountRequest) ToInput() commands.CreateAccountInput {
	return commands.CreateAccountInput{
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
		Points:    r.Points,
	}
}

type UpdateAccountRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
}

func (r UpdateAccountRequest) ToInput() commands.UpdateAccountInput {
	return commands.UpdateAccountInput{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

type PointsRequest struct {
	Points int64 `json:"puntos" binding:"required,gt=0"`
}

type ListAccountsQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Size   int    `form:"size" binding:"omitempty,min=1,max=100"`
	Email  string `form:"email"`
	Status string `form:"status"`
}

type SearchQuery struct {
	Q string `form:"q" binding:"required"`
}
