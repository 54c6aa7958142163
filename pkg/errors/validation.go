package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxCityNameLength bounds a city display name in bytes.
const MaxCityNameLength = 256

// ValidateCityName validates a city display name.
//
// Names are compared exactly, so only names that could never round-trip
// through a line of input are rejected:
//   - No empty names
//   - No control characters (including embedded newlines)
//   - Valid UTF-8
//   - Maximum length of MaxCityNameLength bytes
func ValidateCityName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "city name cannot be empty")
	}

	if len(name) > MaxCityNameLength {
		return New(ErrCodeInvalidInput, "city name too long (max %d bytes)", MaxCityNameLength)
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "city name is not valid UTF-8")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "city name contains invalid control characters")
		}
	}

	return nil
}
