package errors

import (
	"strings"
	"testing"
)

func TestValidateCityName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "gdansk", false},
		{"with space", "New York", false},
		{"unicode", "Київ", false},
		{"max length", strings.Repeat("a", MaxCityNameLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxCityNameLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"invalid utf8", "foo\xffbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCityName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCityName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateCityName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
