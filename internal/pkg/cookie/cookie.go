package cookie

import (
	"points-rewards/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// GetSessionToken returns the bearer token carried in the session cookie, if any.
func GetSessionToken(c *gin.Context, cfg config.CookieConfig) string {
	token, _ := c.Cookie(cfg.Name)
	return token
}
