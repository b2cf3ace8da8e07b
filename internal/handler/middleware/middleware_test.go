//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/handler/middleware"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/pkg/metrics"
	"points-rewards/internal/usecase"
	"points-rewards/internal/usecase/shared"
	common "points-rewards/tests/common/httptest"
	usecasemock "points-rewards/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, env string) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	cfg := config.NewTestConfig()
	cfg.Server.Environment = env
	m := middleware.NewAuthMiddleware(validator, cfg)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	whoami := func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": p.ID.String(), "user_id": p.UserID, "role": p.Role.String()})
	}
	r.GET("/me", m.RequireAuth(), whoami)
	r.GET("/admin", m.RequireAuth(), m.RequirePermission(account.PermAdmin), whoami)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	user := shared.Principal{ID: uuid.New(), UserID: 42, Email: "ana@flesan.com", Role: account.RoleUser}

	t.Run("bearer token", func(t *testing.T) {
		r, v := newAuthRouter(t, config.EnvProduction)
		v.EXPECT().ValidateToken(gomock.Any(), "tok").Return(user, nil)

		rec := common.PerformRequest(t, r, http.MethodGet, "/me", nil, "tok")

		var body map[string]any
		common.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, float64(42), body["user_id"])
	})

	t.Run("session cookie wins over header", func(t *testing.T) {
		r, v := newAuthRouter(t, config.EnvProduction)
		v.EXPECT().ValidateToken(gomock.Any(), "from-cookie").Return(user, nil)

		rec := common.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: "session", Value: "from-cookie"}}, "from-header")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r, v := newAuthRouter(t, config.EnvDevelopment)
		v.EXPECT().ValidateToken(gomock.Any(), "bad").Return(shared.Principal{}, errs.Unauthenticated(nil, "invalid token"))

		rec := common.PerformRequest(t, r, http.MethodGet, "/me", nil, "bad")
		common.AssertErrorCode(t, rec, http.StatusUnauthorized, errs.CodeAuthentication)
	})

	t.Run("missing credentials outside development", func(t *testing.T) {
		for _, env := range []string{config.EnvProduction, config.EnvStaging} {
			r, _ := newAuthRouter(t, env)
			rec := common.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
			common.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
		}
	})

	t.Run("development bypass issues the mock admin", func(t *testing.T) {
		r, _ := newAuthRouter(t, config.EnvDevelopment)

		rec := common.PerformRequest(t, r, http.MethodGet, "/admin", nil, "")

		var body map[string]any
		common.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		dev := usecase.DevPrincipal()
		assert.Equal(t, dev.ID.String(), body["id"])
		assert.Equal(t, float64(999999), body["user_id"])
		assert.Equal(t, "admin", body["role"])
	})

	t.Run("development bypass does not apply to a non-bearer header", func(t *testing.T) {
		r, _ := newAuthRouter(t, config.EnvDevelopment)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		common.AssertErrorCode(t, rec, http.StatusUnauthorized, errs.CodeAuthentication)
	})
}

func TestRequirePermission(t *testing.T) {
	r, v := newAuthRouter(t, config.EnvProduction)
	v.EXPECT().ValidateToken(gomock.Any(), "user").
		Return(shared.Principal{ID: uuid.New(), Role: account.RoleUser}, nil)
	v.EXPECT().ValidateToken(gomock.Any(), "admin").
		Return(shared.Principal{ID: uuid.New(), Role: account.RoleAdmin}, nil)

	rec := common.PerformRequest(t, r, http.MethodGet, "/admin", nil, "user")
	body := common.AssertErrorCode(t, rec, http.StatusForbidden, errs.CodeAuthorization)
	assert.Equal(t, "admin", body.Details["required_permission"])
	assert.Equal(t, "user", body.Details["role"])

	rec = common.PerformRequest(t, r, http.MethodGet, "/admin", nil, "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(_ *gin.Context) { panic("boom") })
	r.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(errs.Conflict(nil, "dup", nil))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("driver: bad connection"))
	})

	rec := common.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
	body := common.AssertErrorCode(t, rec, http.StatusInternalServerError, errs.CodeInfrastructure)
	assert.Equal(t, "Internal server error", body.Message)

	rec = common.PerformRequest(t, r, http.MethodGet, "/unwritten", nil, "")
	common.AssertErrorCode(t, rec, http.StatusConflict, errs.CodeConflict)

	rec = common.PerformRequest(t, r, http.MethodGet, "/plain", nil, "")
	body = common.AssertErrorCode(t, rec, http.StatusInternalServerError, errs.CodeInfrastructure)
	assert.NotContains(t, body.Message, "driver")
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	r := gin.New()
	r.Use(middleware.Metrics(metrics.New(reg)))
	r.GET("/api/canjes/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, id := range []string{"a", "b"} {
		common.PerformRequest(t, r, http.MethodGet, "/api/canjes/"+id, nil, "")
	}
	common.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "points_rewards_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "path" {
					counts[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{"/api/canjes/:id": 2, "unmatched": 1}, counts)
}
