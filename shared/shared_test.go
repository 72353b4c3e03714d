package shared_test

import (
	"starlight/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "starlight_bookings", shared.BuildKey("starlight_bookings"))
	assert.Equal(t, "starlight_bookings:v1", shared.BuildKey("starlight_bookings", "v1"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildKey("limiter", "1.2.3.4", "", "curl"))
}

func TestTrimFields(t *testing.T) {
	in := map[string]string{"name": "  Asha ", "email": "a@x.com\n"}

	out := shared.TrimFields(in)

	assert.Equal(t, map[string]string{"name": "Asha", "email": "a@x.com"}, out)
	assert.Equal(t, "  Asha ", in["name"], "input must not be modified")
}
