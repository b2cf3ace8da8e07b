package request

import (
	"reflect"
	"strings"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/handler/httperr"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom tags on gin's validator engine and
// reports fields by their json name.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(jsonTagName)
	if err := v.RegisterValidation("estado", validStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("role", validRole); err != nil {
		return err
	}

	statuses := make([]string, 0, len(redemption.ValidStatuses()))
	for _, s := range redemption.ValidStatuses() {
		statuses = append(statuses, s.String())
	}
	httperr.RegisterAllowedValues("estado", statuses)
	httperr.RegisterAllowedValues("role", []string{
		account.RoleAdmin.String(),
		account.RoleManager.String(),
		account.RoleUser.String(),
		account.RoleViewer.String(),
	})
	return nil
}

func validStatus(fl validator.FieldLevel) bool {
	_, err := redemption.ParseStatus(fl.Field().String())
	return err == nil
}

func validRole(fl validator.FieldLevel) bool {
	_, err := account.NewRole(fl.Field().String())
	return err == nil
}

func jsonTagName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
