package httperr

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"points-rewards/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const internalMessage = "Internal server error"

// Response is the envelope written for every failed request.
type Response struct {
	Status    int            `json:"-"`
	Message   string         `json:"message"`
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details,omitempty"`
}

var (
	allowedMu     sync.RWMutex
	allowedValues = map[string][]string{}
)

// RegisterAllowedValues makes AbortBinding list values for fields failing
// on a custom enum tag.
func RegisterAllowedValues(tag string, values []string) {
	allowedMu.Lock()
	defer allowedMu.Unlock()
	allowedValues[tag] = values
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:     http.StatusBadRequest,
	errs.KindBusiness:       http.StatusBadRequest,
	errs.KindAuthentication: http.StatusUnauthorized,
	errs.KindAuthorization:  http.StatusForbidden,
	errs.KindNotFound:       http.StatusNotFound,
	errs.KindConflict:       http.StatusConflict,
}

// FromError maps an error to its envelope. Anything that is not an
// AppError of a client-facing kind becomes a generic 500.
func FromError(err error) Response {
	appErr, ok := errs.AsApp(err)
	if !ok {
		return Internal()
	}
	status, ok := kindStatus[appErr.Kind]
	if !ok {
		return Internal()
	}
	return Response{
		Status:    status,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
		Details:   appErr.Details,
	}
}

func Internal() Response {
	return Response{
		Status:    http.StatusInternalServerError,
		Message:   internalMessage,
		ErrorCode: errs.CodeInfrastructure,
	}
}

// Abort renders err through FromError.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	abort(c, err, FromError(err))
}

// AbortWithError renders an explicit envelope; err is kept on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, details map[string]any) {
	if err == nil {
		err = errors.New(msg)
	}
	abort(c, err, Response{Status: status, Message: msg, ErrorCode: code, Details: details})
}

// AbortBinding renders request binding failures as validation errors,
// listing the offending fields when the validator reported them.
func AbortBinding(c *gin.Context, err error) {
	var details map[string]any
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		details = map[string]any{"fields": fields}
		allowedMu.RLock()
		for _, fe := range verrs {
			fields[jsonName(fe)] = fe.Tag()
			if values, ok := allowedValues[fe.Tag()]; ok {
				details["valid_values"] = values
			}
		}
		allowedMu.RUnlock()
	}
	AbortWithError(c, http.StatusBadRequest, err, errs.CodeValidation, "Invalid request", details)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// gin's validator reports the struct field name; the json tag name is
// registered through RegisterTagNameFunc when available.
func jsonName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return strings.ToLower(fe.StructField())
	}
	return name
}
