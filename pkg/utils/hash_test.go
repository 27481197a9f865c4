package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashString(""))
	assert.Equal(t, HashString("+919876543210"), HashString("+919876543210"))
	assert.NotEqual(t, HashString("+919876543210"), HashString("+919876543211"))
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "formatted", in: "+91-987-654-3210", want: "+**-***-***-3210"},
		{name: "bare", in: "9876543210", want: "******3210"},
		{name: "short", in: "123", want: "**3"},
		{name: "trimmed", in: "  98765  ", want: "*8765"},
		{name: "no digits", in: "n/a", want: "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.in))
		})
	}
}
