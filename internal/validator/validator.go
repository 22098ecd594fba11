// Package validator registers custom validation functions with Gin's binding
// engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"paisa/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("method_type", validateMethodType)
		_ = v.RegisterValidation("recurrence", validateRecurrence)
		_ = v.RegisterValidation("hex_color", validateHexColor)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateMethodType(fl validator.FieldLevel) bool {
	return models.MethodType(fl.Field().String()).Valid()
}

func validateRecurrence(fl validator.FieldLevel) bool {
	return models.Recurrence(fl.Field().String()).Valid()
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}
