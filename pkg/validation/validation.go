package validation

import (
	"strings"
	"unicode"
)

const maxCityNameLength = 100

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityName accepts any non-blank name of reasonable length without control characters.
// Whether the city exists is for the provider to decide.
func IsValidCityName(s string) bool {
	trimmed, ok := TrimAndValidate(s)
	if !ok || len([]rune(trimmed)) > maxCityNameLength {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidUnit validates a temperature unit system name
func IsValidUnit(unit string) bool {
	return unit == "metric" || unit == "imperial"
}
