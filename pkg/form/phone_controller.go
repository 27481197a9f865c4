package form

import (
	"go.uber.org/zap"

	"sakha-landing/pkg/dom"
	"sakha-landing/pkg/phone"
	"sakha-landing/pkg/utils"
)

// ErrorClass marks an input holding an invalid value.
const ErrorClass = "form__input--error"

// PhoneFieldController keeps the phone input formatted while the user types
// and flags it when it loses focus holding an invalid number.
type PhoneFieldController struct {
	field  dom.Field
	logger *zap.Logger
}

// NewPhoneFieldController creates a controller for field.
func NewPhoneFieldController(field dom.Field, logger *zap.Logger) *PhoneFieldController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhoneFieldController{field: field, logger: logger}
}

// Field returns the controlled input.
func (c *PhoneFieldController) Field() dom.Field {
	return c.field
}

// HandleInput reformats the field from its digits and optimistically drops
// the error flag. The validity message stays until the next blur.
// The caret position is not preserved.
func (c *PhoneFieldController) HandleInput() {
	c.field.SetValue(phone.Format(c.field.Value()))
	c.field.RemoveClass(ErrorClass)
}

// HandleBlur validates the current value. An empty field is not flagged.
func (c *PhoneFieldController) HandleBlur() phone.ValidationResult {
	value := c.field.Value()
	res := phone.Validate(value)

	if value != "" && !res.Valid {
		c.field.SetCustomValidity(res.Message)
		c.field.AddClass(ErrorClass)
		c.logger.Debug("phone field flagged", zap.String("phone", utils.MaskPhone(value)))
		return res
	}

	c.field.SetCustomValidity("")
	c.field.RemoveClass(ErrorClass)
	return res
}

// Validate runs the predicate against the current value without touching the field.
func (c *PhoneFieldController) Validate() phone.ValidationResult {
	return phone.Validate(c.field.Value())
}
