package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	trimmed, ok := TrimAndValidate("  Yerevan ")
	assert.True(t, ok)
	assert.Equal(t, "Yerevan", trimmed)

	trimmed, ok = TrimAndValidate(" \t ")
	assert.False(t, ok)
	assert.Empty(t, trimmed)
}

func TestIsValidCityName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "Paris", true},
		{"with spaces", "New York", true},
		{"unicode", "São Paulo", true},
		{"padded", "  Tokyo  ", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"control character", "Par\x00is", false},
		{"too long", strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidCityName(tt.input))
		})
	}
}

func TestIsValidUnit(t *testing.T) {
	assert.True(t, IsValidUnit("metric"))
	assert.True(t, IsValidUnit("imperial"))
	assert.False(t, IsValidUnit("kelvin"))
	assert.False(t, IsValidUnit(""))
	assert.True(t, IsNotEmpty("x"))
	assert.False(t, IsNotEmpty(" "))
}
