package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sakha-landing/pkg/dom/memdom"
	"sakha-landing/pkg/phone"
)

func newPhoneController() (*PhoneFieldController, *memdom.Field) {
	f := memdom.NewForm(FieldPhone)
	input := f.Input(FieldPhone)
	return NewPhoneFieldController(input, nil), input
}

func TestPhoneFieldController_HandleInputFormats(t *testing.T) {
	c, input := newPhoneController()

	typed := ""
	for _, r := range "9876543210" {
		typed = input.Value() + string(r)
		input.SetValue(typed)
		c.HandleInput()
	}

	assert.Equal(t, "+91-987-654-3210", input.Value())
	assert.True(t, phone.IsValidIndian(input.Value()))
}

func TestPhoneFieldController_HandleInputPaste(t *testing.T) {
	c, input := newPhoneController()
	input.SetValue("98765 43210")
	c.HandleInput()
	assert.Equal(t, "+91-987-654-3210", input.Value())
}

func TestPhoneFieldController_BlurInvalid(t *testing.T) {
	c, input := newPhoneController()
	input.SetValue("12345")

	res := c.HandleBlur()

	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Message)
	assert.True(t, input.HasClass(ErrorClass))
	assert.Equal(t, phone.BlurMessage, input.ValidityMessage())
	assert.False(t, input.ReportValidity())
}

func TestPhoneFieldController_BlurValidClearsError(t *testing.T) {
	c, input := newPhoneController()
	input.SetValue("12345")
	c.HandleBlur()

	input.SetValue("+91-987-654-3210")
	res := c.HandleBlur()

	assert.True(t, res.Valid)
	assert.False(t, input.HasClass(ErrorClass))
	assert.Empty(t, input.ValidityMessage())
}

func TestPhoneFieldController_BlurEmptyNotFlagged(t *testing.T) {
	c, input := newPhoneController()
	input.AddClass(ErrorClass)
	input.SetCustomValidity("stale")

	c.HandleBlur()

	assert.False(t, input.HasClass(ErrorClass))
	assert.Empty(t, input.ValidityMessage())
}

func TestPhoneFieldController_InputClearsErrorFlag(t *testing.T) {
	c, input := newPhoneController()
	input.SetValue("12345")
	c.HandleBlur()
	assert.True(t, input.HasClass(ErrorClass))

	input.SetValue(input.Value() + "6")
	c.HandleInput()

	assert.False(t, input.HasClass(ErrorClass))
	// Re-checked on the next blur only.
	assert.Equal(t, phone.BlurMessage, input.ValidityMessage())
}

func TestPhoneFieldController_ValidateHasNoSideEffects(t *testing.T) {
	c, input := newPhoneController()
	input.SetValue("12345")

	assert.False(t, c.Validate().Valid)
	assert.Equal(t, "12345", input.Value())
	assert.False(t, input.HasClass(ErrorClass))
	assert.Empty(t, input.ValidityMessage())
}
