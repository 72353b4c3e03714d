package timezone_test

import (
	"starlight/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty is UTC", input: "", expected: "UTC"},
		{name: "unknown falls back to UTC", input: "Mars/Olympus_Mons", expected: "UTC"},
		{name: "standard name", input: "UTC", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Load(tt.input).String())
		})
	}
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(instant, time.RFC3339)

	parsed, err := time.Parse(time.RFC3339, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestStampAndYear(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339, timezone.Stamp())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, timezone.Year(), parsed.Year()-1)
	assert.NotNil(t, timezone.Location())
}
