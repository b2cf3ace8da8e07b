package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/handler/api"
	reqdto "points-rewards/internal/handler/dto/request"
	"points-rewards/internal/handler/middleware"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine            *gin.Engine
	Config            config.Config
	Logger            *middleware.Logger
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer
	AuthMiddleware    *middleware.AuthMiddleware
	HealthHandler     *api.HealthHandler
	AuthHandler       *api.AuthHandler
	RedemptionHandler *api.RedemptionHandler
	AccountHandler    *api.AccountHandler
	BenefitHandler    *api.BenefitHandler
}

func NewRouter(p RouterParams) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(p)
	setupRoutes(p)
	return nil
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	if p.Config.Metrics.Enabled {
		p.Engine.Use(middleware.Metrics(p.Metrics))
	}
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.HealthHandler.Check)

	if p.Config.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authMw := p.AuthMiddleware
	can := authMw.RequirePermission
	read := []gin.HandlerFunc{can(account.PermRead)}
	write := []gin.HandlerFunc{can(account.PermWrite)}
	admin := []gin.HandlerFunc{can(account.PermAdmin)}
	manage := []gin.HandlerFunc{can(account.PermManageBenefits)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMw.RequireAuth())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
		})

		redemptions := p.RedemptionHandler
		addRoutes(apiGroup.Group("/canjes"), []route{
			{Method: http.MethodPost, Path: "", Handler: redemptions.Create, Mw: write},
			{Method: http.MethodGet, Path: "", Handler: redemptions.List, Mw: admin},
			{Method: http.MethodGet, Path: "/usuario/:user_id", Handler: redemptions.ListByUser, Mw: read},
			{Method: http.MethodGet, Path: "/:id", Handler: redemptions.Get, Mw: read},
			{Method: http.MethodPatch, Path: "/:id/estado", Handler: redemptions.UpdateStatus, Mw: write},
		})

		accounts := p.AccountHandler
		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "", Handler: accounts.Create, Mw: admin},
			{Method: http.MethodGet, Path: "", Handler: accounts.List, Mw: read},
			{Method: http.MethodGet, Path: "/search", Handler: accounts.Search, Mw: read},
			{Method: http.MethodGet, Path: "/by-user-id/:user_id", Handler: accounts.GetByUserID, Mw: read},
			{Method: http.MethodGet, Path: "/:id", Handler: accounts.Get, Mw: read},
			// self updates are allowed; the use case rejects updates to other accounts for non-admins
			{Method: http.MethodPut, Path: "/:id", Handler: accounts.Update, Mw: write},
			{Method: http.MethodDelete, Path: "/:id", Handler: accounts.Deactivate, Mw: admin},
			{Method: http.MethodPut, Path: "/:id/activar", Handler: accounts.Activate, Mw: admin},
			{Method: http.MethodPut, Path: "/:id/rol", Handler: accounts.AssignRole, Mw: admin},
			{Method: http.MethodPost, Path: "/:id/puntos", Handler: accounts.GrantPoints, Mw: admin},
			{Method: http.MethodDelete, Path: "/:id/puntos", Handler: accounts.DeductPoints, Mw: admin},
		})

		benefits := p.BenefitHandler
		addRoutes(apiGroup.Group("/beneficios"), []route{
			{Method: http.MethodPost, Path: "", Handler: benefits.Create, Mw: manage},
			{Method: http.MethodGet, Path: "", Handler: benefits.List, Mw: read},
			{Method: http.MethodGet, Path: "/search", Handler: benefits.Search, Mw: read},
			{Method: http.MethodGet, Path: "/summary", Handler: benefits.Summary, Mw: read},
			{Method: http.MethodGet, Path: "/:id", Handler: benefits.Get, Mw: read},
			{Method: http.MethodPut, Path: "/:id", Handler: benefits.Update, Mw: manage},
			{Method: http.MethodPut, Path: "/:id/imagen", Handler: benefits.ReplaceImage, Mw: manage},
			{Method: http.MethodPut, Path: "/:id/desactivar", Handler: benefits.Deactivate, Mw: manage},
			{Method: http.MethodPut, Path: "/:id/activar", Handler: benefits.Activate, Mw: manage},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
