//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser document.
package jsdom

import (
	"syscall/js"

	"sakha-landing/pkg/dom"
)

type element struct {
	v js.Value
}

func (e element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }
func (e element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

// Field wraps an input, select or textarea.
type Field struct {
	element
}

func (f Field) ID() string           { return f.v.Get("id").String() }
func (f Field) Value() string        { return f.v.Get("value").String() }
func (f Field) SetValue(v string)    { f.v.Set("value", v) }
func (f Field) Focus()               { f.v.Call("focus") }
func (f Field) ReportValidity() bool { return f.v.Call("reportValidity").Bool() }

func (f Field) SetCustomValidity(msg string) {
	f.v.Call("setCustomValidity", msg)
}

func (f Field) Group() dom.Element {
	return element{v: f.v.Get("parentElement")}
}

// JSValue exposes the underlying node for event binding.
func (f Field) JSValue() js.Value { return f.v }

type panel struct {
	v js.Value
}

func (p panel) Remove() { p.v.Call("remove") }

// Form wraps a form element.
type Form struct {
	v js.Value
}

// FormByID looks up a form in the current document.
func FormByID(id string) (*Form, bool) {
	v := js.Global().Get("document").Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Form{v: v}, true
}

// JSValue exposes the underlying node for event binding.
func (f *Form) JSValue() js.Value { return f.v }

// Data returns the form's data-* attribute for key.
func (f *Form) Data(key string) string {
	v := f.v.Get("dataset").Get(key)
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (f *Form) Field(id string) (dom.Field, bool) {
	v := f.v.Call("querySelector", "#"+id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return Field{element{v: v}}, true
}

func (f *Form) Fields() []dom.Field {
	nodes := f.v.Call("querySelectorAll", ".form__input")
	n := nodes.Length()
	out := make([]dom.Field, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Field{element{v: nodes.Index(i)}})
	}
	return out
}

func (f *Form) Reset() { f.v.Call("reset") }

func (f *Form) InsertAfter(className, html string) dom.Panel {
	node := js.Global().Get("document").Call("createElement", "div")
	node.Set("className", className)
	node.Set("innerHTML", html)
	f.v.Get("parentNode").Call("insertBefore", node, f.v.Get("nextSibling"))

	opts := js.Global().Get("Object").New()
	opts.Set("behavior", "smooth")
	opts.Set("block", "nearest")
	node.Call("scrollIntoView", opts)
	return panel{v: node}
}

// On registers fn as a listener for event on target and returns the
// js.Func so the caller can release it.
func On(target js.Value, event string, fn func(ev js.Value)) js.Func {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
	return cb
}
