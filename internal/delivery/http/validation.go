package http

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidations installs the custom binding rules used by the
// request structs.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("fullname", validFullName)
}

// validFullName rejects names containing digits; everything else is
// left to the profile moderation flow.
func validFullName(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
