//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", errs.Validation(nil, "bad", nil), http.StatusBadRequest, errs.CodeValidation},
		{"business", errs.Business(nil, "rule", nil), http.StatusBadRequest, errs.CodeBusiness},
		{"authentication", errs.Unauthenticated(nil, "who"), http.StatusUnauthorized, errs.CodeAuthentication},
		{"authorization", errs.Forbidden(nil, "no", nil), http.StatusForbidden, errs.CodeAuthorization},
		{"not found", errs.NotFound(nil, "benefit", 1), http.StatusNotFound, errs.CodeNotFound},
		{"conflict", errs.Conflict(nil, "dup", nil), http.StatusConflict, errs.CodeConflict},
		{"file", errs.File(errs.CodeFileTooLarge, nil, "big", nil), http.StatusBadRequest, errs.CodeFileTooLarge},
		{"infrastructure", errs.Infrastructure(errors.New("pq: boom"), "db down"), http.StatusInternalServerError, errs.CodeInfrastructure},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, errs.CodeInfrastructure},
		{"wrapped app error", errs.Wrap(errs.Conflict(nil, "dup", nil), "create"), http.StatusConflict, errs.CodeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httperr.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
		})
	}

	t.Run("internal errors never leak the cause", func(t *testing.T) {
		resp := httperr.FromError(errs.Infrastructure(errors.New("password=secret"), "db down"))
		assert.Equal(t, "Internal server error", resp.Message)
		assert.Nil(t, resp.Details)
	})

	t.Run("details are forwarded", func(t *testing.T) {
		resp := httperr.FromError(errs.Validation(nil, "insufficient points", map[string]any{"available": 1, "required": 2}))
		assert.Equal(t, map[string]any{"available": 1, "required": 2}, resp.Details)
	})
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cause := errs.NotFound(nil, "redemption", "x")
	var recorded error
	r.GET("/", func(c *gin.Context) {
		httperr.Abort(c, cause)
		recorded = c.Errors.Last().Err
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "redemption not found", body["message"])
	assert.Equal(t, errs.CodeNotFound, body["error_code"])
	assert.Contains(t, body, "details")
	assert.Same(t, cause, recorded)
}

func TestAbortWithErrorOmitsEmptyDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, errs.CodeValidation, "Invalid id", nil)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid id","error_code":"APP-ERR-005"}`, rec.Body.String())
}
