package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
)

var (
	// custom validation tags & texts
	statusTag  = "status"
	statusText = "must be one of Present, Absent, Late or Excused"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

// statusValidation only allows valid attendance status names.
func statusValidation(fl validator.FieldLevel) bool {
	_, err := StatusFromString(fl.Field().String())
	return err == nil
}
