package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen characters.
// Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Apply runs the validator against value and records the first failure in errs under key.
// An existing error for key is never overwritten.
func Apply(errs map[string]string, key, value string, v Validator) {
	if _, exists := errs[key]; exists {
		return
	}
	if msg := v(value); msg != "" {
		errs[key] = msg
	}
}
