package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"points-rewards/internal/handler/httperr"
	"points-rewards/internal/handler/middleware"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageField = "imagen"

func principal(c *gin.Context) (shared.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, errs.Unauthenticated(nil, "Authentication required"))
	}
	return p, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeValidation, "Invalid "+name,
			map[string]any{name: c.Param(name)})
		return uuid.Nil, false
	}
	return id, true
}

func userIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("user_id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.CodeValidation, "Invalid user_id",
			map[string]any{"user_id": raw})
		return 0, false
	}
	return id, true
}

// formImage returns nil when the request has no image part. The caller closes the file.
func formImage(c *gin.Context) (*commands.ImageUpload, multipart.File, error) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, nil, nil
	}
	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &commands.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}
