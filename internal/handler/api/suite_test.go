//go:build unit

package api_test

import (
	"strconv"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/handler/middleware"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var callerID = uuid.MustParse("6f1c2c1e-8a51-4c43-9a43-2b0c7f6a1d10")

// fakeAuth stands in for RequireAuth: the bearer token is the caller's role
// and X-User-ID optionally carries the external user id.
func fakeAuth(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		httperr.Abort(c, errs.Unauthenticated(nil, "Access token required"))
		return
	}
	role := account.Role(token[len("Bearer "):])
	userID, _ := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64)
	middleware.SetPrincipal(c, shared.Principal{
		ID:     callerID,
		UserID: userID,
		Email:  "caller@flesan.com",
		Role:   role,
	})
	c.Next()
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

func notFound(resource string) error {
	return errs.NotFound(nil, resource, uuid.Nil)
}
