package api

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	reqdto "points-rewards/internal/handler/dto/request"
	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BenefitHandler struct {
	cmds commands.BenefitCommands
	q    queries.BenefitQueries
}

func NewBenefitHandler(cmds commands.BenefitCommands, q queries.BenefitQueries) *BenefitHandler {
	return &BenefitHandler{cmds: cmds, q: q}
}

// @Summary Create benefit
// @Description Multipart form; the image part is optional.
// @Tags beneficios
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param nombre formData string true "Name"
// @Param detalle formData string false "Detail"
// @Param valor formData int true "Point cost"
// @Param requiere_jornada formData bool false "Requires a journey"
// @Param imagen formData file false "Image (jpeg, png, gif, webp; max 5MiB)"
// @Success 201 {object} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/beneficios [post]
func (h *BenefitHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.CreateBenefitRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	img, file, err := formImage(c)
	if err != nil {
		httperr.Abort(c, errs.File(errs.CodeFileUpload, err, "failed to read image", nil))
		return
	}
	defer closeFile(file)

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput(img))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/beneficios/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBenefitView(view))
}

// @Summary Get benefit
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 404 {object} httperr.Response
// @Router /api/beneficios/{id} [get]
func (h *BenefitHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitView(view))
}

// @Summary List benefits
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param size query int false "Page size"
// @Param nombre query string false "Name contains"
// @Param activos query bool false "Only active benefits"
// @Success 200 {object} resdto.BenefitListResponse
// @Router /api/beneficios [get]
func (h *BenefitHandler) List(c *gin.Context) {
	var query reqdto.ListBenefitsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	filter := queries.BenefitFilter{Name: query.Name, ActiveOnly: query.ActiveOnly}
	page, err := h.q.List(c.Request.Context(), filter, queries.NewPagination(query.Page, query.Size))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitPage(page))
}

// @Summary Search benefits
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term (min 2 chars)"
// @Success 200 {array} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Router /api/beneficios/search [get]
func (h *BenefitHandler) Search(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromBenefitViews(views))
}

// @Summary Benefit summary
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BenefitSummaryResponse
// @Router /api/beneficios/summary [get]
func (h *BenefitHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBenefitSummary(summary))
}

// @Summary Update benefit
// @Tags beneficios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Param request body reqdto.UpdateBenefitRequest true "Fields to change"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/beneficios/{id} [put]
func (h *BenefitHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	h.respond(c)(h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()))
}

// @Summary Replace benefit image
// @Tags beneficios
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Param imagen formData file true "Image"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/beneficios/{id}/imagen [put]
func (h *BenefitHandler) ReplaceImage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}
	img, file, err := formImage(c)
	if err != nil {
		httperr.Abort(c, errs.File(errs.CodeFileUpload, err, "failed to read image", nil))
		return
	}
	defer closeFile(file)
	if img == nil {
		img = &commands.ImageUpload{}
	}
	h.respond(c)(h.cmds.ReplaceImage(c.Request.Context(), actor, id, *img))
}

// @Summary Deactivate benefit
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 404 {object} httperr.Response
// @Router /api/beneficios/{id}/desactivar [put]
func (h *BenefitHandler) Deactivate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.Deactivate(c.Request.Context(), actor, id))
}

// @Summary Activate benefit
// @Tags beneficios
// @Produce json
// @Security BearerAuth
// @Param id path string true "Benefit ID"
// @Success 200 {object} resdto.BenefitResponse
// @Failure 404 {object} httperr.Response
// @Router /api/beneficios/{id}/activar [put]
func (h *BenefitHandler) Activate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, ok := principal(c)
	if !ok {
		return
	}
	h.respond(c)(h.cmds.Activate(c.Request.Context(), actor, id))
}

func (h *BenefitHandler) respond(c *gin.Context) func(*queries.BenefitView, error) {
	return func(view *queries.BenefitView, err error) {
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBenefitView(view))
	}
}

func closeFile(f multipart.File) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		slog.Warn("failed to close uploaded file", "error", err)
	}
}
