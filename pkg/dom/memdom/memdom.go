// Package memdom implements the dom interfaces in memory.
package memdom

import (
	"sync"

	"sakha-landing/pkg/dom"
)

// classSet is shared by fields and groups.
type classSet struct {
	mu      *sync.Mutex
	classes map[string]struct{}
}

func newClassSet(mu *sync.Mutex) classSet {
	return classSet{mu: mu, classes: make(map[string]struct{})}
}

func (c classSet) AddClass(name string) {
	c.mu.Lock()
	c.classes[name] = struct{}{}
	c.mu.Unlock()
}

func (c classSet) RemoveClass(name string) {
	c.mu.Lock()
	delete(c.classes, name)
	c.mu.Unlock()
}

func (c classSet) HasClass(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.classes[name]
	return ok
}

// Group is the wrapper element of a field.
type Group struct {
	classSet
}

// Field is an in-memory input element.
type Field struct {
	classSet

	id       string
	value    string
	validity string
	focused  bool
	reported []string
	group    *Group
}

// ID returns the element id.
func (f *Field) ID() string { return f.id }

// Value returns the current value.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue replaces the value without any input event.
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Focus marks the field as focused.
func (f *Field) Focus() {
	f.mu.Lock()
	f.focused = true
	f.mu.Unlock()
}

// Focused reports whether Focus was called.
func (f *Field) Focused() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// SetCustomValidity stores msg. An empty msg makes the field valid again.
func (f *Field) SetCustomValidity(msg string) {
	f.mu.Lock()
	f.validity = msg
	f.mu.Unlock()
}

// ValidityMessage returns the message set by SetCustomValidity.
func (f *Field) ValidityMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validity
}

// ReportValidity records the current message, if any, and reports whether
// the field is valid.
func (f *Field) ReportValidity() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.validity == "" {
		return true
	}
	f.reported = append(f.reported, f.validity)
	return false
}

// Reported returns every message surfaced through ReportValidity.
func (f *Field) Reported() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reported...)
}

// Group returns the field's wrapper element.
func (f *Field) Group() dom.Element { return f.group }

// GroupElement is Group with the concrete type, for assertions.
func (f *Field) GroupElement() *Group { return f.group }

// Panel is a node inserted after the form.
type Panel struct {
	form      *Form
	ClassName string
	HTML      string
}

// Remove detaches the panel. Removing twice is a no-op.
func (p *Panel) Remove() {
	p.form.mu.Lock()
	defer p.form.mu.Unlock()
	for i, s := range p.form.siblings {
		if s == p {
			p.form.siblings = append(p.form.siblings[:i], p.form.siblings[i+1:]...)
			return
		}
	}
}

// Form is an in-memory form. Fields keep their creation order.
type Form struct {
	mu       sync.Mutex
	fields   []*Field
	byID     map[string]*Field
	siblings []*Panel
}

// NewForm creates a form with one empty field per id.
func NewForm(ids ...string) *Form {
	f := &Form{byID: make(map[string]*Field, len(ids))}
	for _, id := range ids {
		field := &Field{
			classSet: newClassSet(&f.mu),
			id:       id,
			group:    &Group{classSet: newClassSet(&f.mu)},
		}
		f.fields = append(f.fields, field)
		f.byID[id] = field
	}
	return f
}

// Input returns the concrete field for id, or nil.
func (f *Form) Input(id string) *Field {
	return f.byID[id]
}

// Field looks up a field by id.
func (f *Form) Field(id string) (dom.Field, bool) {
	field, ok := f.byID[id]
	if !ok {
		return nil, false
	}
	return field, true
}

// Fields returns every field in creation order.
func (f *Form) Fields() []dom.Field {
	out := make([]dom.Field, 0, len(f.fields))
	for _, field := range f.fields {
		out = append(out, field)
	}
	return out
}

// Reset empties every value. Classes and validity messages are kept, as in
// a browser.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, field := range f.fields {
		field.value = ""
	}
}

// InsertAfter places a new panel directly after the form.
func (f *Form) InsertAfter(className, html string) dom.Panel {
	p := &Panel{form: f, ClassName: className, HTML: html}
	f.mu.Lock()
	// The newest node sits directly after the form.
	f.siblings = append([]*Panel{p}, f.siblings...)
	f.mu.Unlock()
	return p
}

// Panels returns the nodes currently following the form, nearest first.
func (f *Form) Panels() []*Panel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Panel(nil), f.siblings...)
}
