package utils

import (
	"Homestock-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return domain.IsAllowedUnit(fl.Field().String())
	})
}
