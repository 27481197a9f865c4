package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sakha-landing/pkg/models"
)

func TestStruct(t *testing.T) {
	tests := []struct {
		name string
		in   models.FormSubmission
		want map[string]string
	}{
		{
			name: "valid",
			in:   models.FormSubmission{ParentName: "Asha", Phone: "+91-987-654-3210", Language: "hindi"},
			want: nil,
		},
		{
			name: "missing phone",
			in:   models.FormSubmission{ParentName: "Asha"},
			want: map[string]string{"Phone": "required"},
		},
		{
			name: "bad phone",
			in:   models.FormSubmission{Phone: "12345"},
			want: map[string]string{"Phone": "invalid_phone"},
		},
		{
			name: "free text fields unchecked",
			in:   models.FormSubmission{ParentName: strings.Repeat("a", 500), CallTime: strings.Repeat("b", 500), Phone: "9876543210"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Struct(tt.in))
		})
	}
}

func TestInstance_Var(t *testing.T) {
	assert.NoError(t, Instance().Var("09876543210", TagIndianPhone))
	assert.Error(t, Instance().Var("5876543210", TagIndianPhone))
}
