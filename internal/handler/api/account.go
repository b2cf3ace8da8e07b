package api

import (
	"net/http"

	reqdto "points-rewards/internal/handler/dto/request"
	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAccountRequest true "User"
// @Success 201 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users [post]
func (h *AccountHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/users/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromAccountView(view))
}

// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Get user by external ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "External user ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/by-user-id/{user_id} [get]
func (h *AccountHandler) GetByUserID(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param size query int false "Page size"
// @Param email query string false "Email contains"
// @Param status query string false "ACTIVE or INACTIVE"
// @Success 200 {object} resdto.AccountListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users [get]
func (h *AccountHandler) List(c *gin.Context) {
	var query reqdto.ListAccountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	filter := queries.AccountFilter{Email: query.Email, Status: query.Status}
	page, err := h.q.List(c.Request.Context(), filter, queries.NewPagination(query.Page, query.Size))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountPage(page))
}

// @Summary Search users
// @Description Matches email, first name or last name.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term (min 2 chars)"
// @Success 200 {array} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users/search [get]
func (h *AccountHandler) Search(c *gin.Context) {
	var query reqdto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	views, err := h.q.Search(c.Request.Context(), query.Q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Update user
// @Description Users may update themselves; admins may update anyone.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} resdto.AccountResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/users/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	h.respond(c)(h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()))
}

// @Summary Deactivate user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id} [delete]
func (h *AccountHandler) Deactivate(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.Deactivate(c.Request.Context(), actor, id))
}

// @Summary Activate user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.AccountResponse
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id}/activar [put]
func (h *AccountHandler) Activate(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.Activate(c.Request.Context(), actor, id))
}

// @Summary Assign role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.AssignRoleRequest true "Role"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id}/rol [put]
func (h *AccountHandler) AssignRole(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	h.respond(c)(h.cmds.AssignRole(c.Request.Context(), actor, id, req.Role))
}

// @Summary Grant points
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.PointsRequest true "Points"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id}/puntos [post]
func (h *AccountHandler) GrantPoints(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	h.respond(c)(h.cmds.GrantPoints(c.Request.Context(), actor, id, req.Points))
}

// @Summary Deduct points
// @Description Fails without changes when the balance is lower than the amount.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.PointsRequest true "Points"
// @Success 200 {object} resdto.AccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/users/{id}/puntos [delete]
func (h *AccountHandler) DeductPoints(c *gin.Context) {
	id, actor, ok := h.target(c)
	if !ok {
		return
	}
	var req reqdto.PointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	h.respond(c)(h.cmds.DeductPoints(c.Request.Context(), actor, id, req.Points))
}

func (h *AccountHandler) target(c *gin.Context) (uuid.UUID, shared.Principal, bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return uuid.Nil, shared.Principal{}, false
	}
	actor, ok := principal(c)
	return id, actor, ok
}

func (h *AccountHandler) respond(c *gin.Context) func(*queries.AccountView, error) {
	return func(view *queries.AccountView, err error) {
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromAccountView(view))
	}
}
