package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_FieldsAndReset(t *testing.T) {
	f := NewForm("a", "b")

	a, ok := f.Field("a")
	require.True(t, ok)
	_, ok = f.Field("missing")
	assert.False(t, ok)

	a.SetValue("x")
	f.Input("b").SetValue("y")
	a.AddClass("keep")

	f.Reset()

	assert.Empty(t, a.Value())
	assert.Empty(t, f.Input("b").Value())
	assert.True(t, a.HasClass("keep"))

	ids := make([]string, 0, 2)
	for _, field := range f.Fields() {
		ids = append(ids, field.ID())
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestForm_InsertAfterAndRemove(t *testing.T) {
	f := NewForm()
	first := f.InsertAfter("one", "<p>1</p>")
	f.InsertAfter("two", "<p>2</p>")

	panels := f.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, "two", panels[0].ClassName)

	first.Remove()
	first.Remove()
	panels = f.Panels()
	require.Len(t, panels, 1)
	assert.Equal(t, "two", panels[0].ClassName)
}

func TestField_Validity(t *testing.T) {
	f := NewForm("phone")
	in := f.Input("phone")

	assert.True(t, in.ReportValidity())
	in.SetCustomValidity("bad")
	assert.False(t, in.ReportValidity())
	assert.Equal(t, []string{"bad"}, in.Reported())

	in.Focus()
	assert.True(t, in.Focused())
}
