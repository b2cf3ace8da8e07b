package response

import (
	"time"

	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Points    int64      `json:"puntos"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AccountListResponse struct {
	Items      []AccountResponse `json:"users"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	var res AccountResponse
	mustCopy(&res, v)
	return &res
}

func FromAccountViews(vs []queries.AccountView) []AccountResponse {
	res := make([]AccountResponse, 0, len(vs))
	mustCopy(&res, vs)
	return res
}

func FromAccountPage(p *queries.PageResult[queries.AccountView]) *AccountListResponse {
	res := &AccountListResponse{Items: make([]AccountResponse, 0, len(p.Items))}
	mustCopy(res, p)
	return res
}

type MeResponse struct {
	ID          uuid.UUID        `json:"id"`
	UserID      int64            `json:"user_id"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	Permissions []string         `json:"permissions"`
	Account     *AccountResponse `json:"account,omitempty"`
}
