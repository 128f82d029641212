package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/rajifPy/kantin-stok/pkg/barcode"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Register custom validation for barcode IDs
	validate.RegisterValidation("barcode", func(fl validator.FieldLevel) bool {
		return barcode.ValidateFormat(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
