// Package dom is the narrow view of the page the form controllers need.
// The browser binding lives in dom/jsdom, an in-memory one in dom/memdom.
package dom

// Element is anything that carries CSS classes.
type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// Field is a form control holding a text value.
type Field interface {
	Element

	ID() string
	Value() string
	SetValue(v string)
	Focus()

	// SetCustomValidity attaches a validity message; "" marks the field valid.
	SetCustomValidity(msg string)
	// ReportValidity surfaces the current validity message to the user and
	// reports whether the field is valid.
	ReportValidity() bool

	// Group is the element wrapping the field (its parent form group).
	Group() Element
}

// Panel is a transient node rendered next to the form.
type Panel interface {
	Remove()
}

// Form is a form element and the fields it owns.
type Form interface {
	Field(id string) (Field, bool)
	Fields() []Field

	// Reset restores every field to its empty value.
	Reset()

	// InsertAfter renders html in a new node with the given class and
	// places it as the form's next sibling.
	InsertAfter(className, html string) Panel
}
