package api

import (
	"net/http"

	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Get current user
// @Description Identity from the token, its permissions and the stored account when registered
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	current, err := h.authUseCase.GetCurrentUser(c.Request.Context(), p)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	perms := make([]string, 0, len(current.Permissions))
	for _, perm := range current.Permissions {
		perms = append(perms, string(perm))
	}
	res := resdto.MeResponse{
		ID:          current.Principal.ID,
		UserID:      current.Principal.UserID,
		Email:       current.Principal.Email,
		Role:        current.Principal.Role.String(),
		Permissions: perms,
	}
	if current.Account != nil {
		res.Account = resdto.FromAccountView(current.Account)
	}
	c.JSON(http.StatusOK, res)
}
