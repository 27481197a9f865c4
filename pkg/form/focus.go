package form

import "sakha-landing/pkg/dom"

// FocusedGroupClass highlights the group of a focused or filled field.
const FocusedGroupClass = "form__group--focused"

// FocusTracker keeps a field's group highlighted while it is focused or
// holds a value.
type FocusTracker struct {
	field dom.Field
}

// NewFocusTracker creates a tracker and applies the initial state, so a
// field pre-filled by the browser starts highlighted.
func NewFocusTracker(field dom.Field) *FocusTracker {
	t := &FocusTracker{field: field}
	if field.Value() != "" {
		field.Group().AddClass(FocusedGroupClass)
	}
	return t
}

// HandleFocus highlights the group.
func (t *FocusTracker) HandleFocus() {
	t.field.Group().AddClass(FocusedGroupClass)
}

// HandleBlur drops the highlight unless the field holds a value.
func (t *FocusTracker) HandleBlur() {
	if t.field.Value() == "" {
		t.field.Group().RemoveClass(FocusedGroupClass)
	}
}
