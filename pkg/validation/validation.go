package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"sakha-landing/pkg/phone"
)

// TagIndianPhone marks a string field that must be an Indian mobile number.
const TagIndianPhone = "in_phone"

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(TagIndianPhone, func(fl validator.FieldLevel) bool {
		return phone.IsValidIndian(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Instance returns the shared validator.
func Instance() *validator.Validate {
	return v
}

var tagMap = map[string]string{
	"required":     "required",
	TagIndianPhone: "invalid_phone",
}

// Struct validates s and returns field name -> error code, or nil when s is valid.
func Struct(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return map[string]string{"_error": "validation_failed"}
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		code, ok := tagMap[e.Tag()]
		if !ok {
			code = "invalid"
		}
		out[e.Field()] = code
	}
	return out
}
