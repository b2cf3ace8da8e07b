//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_StackOnServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		err       error
		wantStack bool
	}{
		{"infrastructure failure logs the stack", errs.Infrastructure(errs.New("connection reset"), "failed to debit points"), true},
		{"client error logs no stack", errs.NotFound(nil, "redemption", "x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := &Logger{logger: slog.New(slog.NewJSONHandler(&buf, nil)), timezone: time.UTC}

			r := gin.New()
			r.Use(l.LoggingMiddleware())
			r.GET("/", func(c *gin.Context) { httperr.Abort(c, tt.err) })
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			var completed map[string]any
			for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(line, &entry))
				if entry["msg"] == "Request completed" {
					completed = entry
				}
			}
			require.NotNil(t, completed)

			stack, ok := completed["stack"].([]any)
			if !tt.wantStack {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.NotEmpty(t, stack)
			assert.LessOrEqual(t, len(stack), maxStackLines)
		})
	}
}
