package api

import (
	"net/http"

	reqdto "points-rewards/internal/handler/dto/request"
	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.RedemptionQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.RedemptionQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Create redemption
// @Description Redeem a benefit with an account's points. The debit and the redemption are stored atomically.
// @Tags canjes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRedemptionRequest true "Redemption request"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/canjes [post]
func (h *RedemptionHandler) Create(c *gin.Context) {
	var req reqdto.CreateRedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/canjes/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRedemptionView(view))
}

// @Summary Get redemption
// @Tags canjes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/canjes/{id} [get]
func (h *RedemptionHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionView(view))
}

// @Summary List redemptions of an account
// @Description Paginated, newest first. Each item carries the account's current balance.
// @Tags canjes
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "External user ID"
// @Param page query int false "Page (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param estado query string false "Status filter"
// @Success 200 {object} resdto.RedemptionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/canjes/usuario/{user_id} [get]
func (h *RedemptionHandler) ListByUser(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var query reqdto.ListUserRedemptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	page, err := h.q.ListByUser(c.Request.Context(), userID, query.Status, queries.NewPagination(query.Page, query.Size))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionPage(page))
}

// @Summary List redemptions
// @Description Admin listing filtered by account, benefit and status.
// @Tags canjes
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Param user_id query int false "External user ID"
// @Param beneficio_id query string false "Benefit ID"
// @Param estado query string false "Status filter"
// @Success 200 {object} resdto.RedemptionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/canjes [get]
func (h *RedemptionHandler) List(c *gin.Context) {
	var query reqdto.ListRedemptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	filter := queries.RedemptionFilter{UserID: query.UserID, Status: query.Status}
	if query.BenefitID != "" {
		// format already checked by the uuid binding tag
		id := uuid.MustParse(query.BenefitID)
		filter.BenefitID = &id
	}

	page, err := h.q.List(c.Request.Context(), filter, queries.NewPagination(query.Page, query.Size))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionPage(page))
}

// @Summary Change redemption status
// @Description Canceling an ACTIVO redemption refunds its points.
// @Tags canjes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Param request body reqdto.UpdateRedemptionStatusRequest true "Target status"
// @Success 200 {object} resdto.RedemptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/canjes/{id}/estado [patch]
func (h *RedemptionHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRedemptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedemptionView(view))
}
