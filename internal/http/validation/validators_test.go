package validation

import "testing"

const errTitleRequired = "Title is required."

func TestRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		maxLen    int
		value     string
		errMsg    string
	}{
		{
			name:      "valid input",
			fieldName: "Title",
			maxLen:    10,
			value:     "valid",
			errMsg:    "",
		},
		{
			name:      "empty string",
			fieldName: "Title",
			maxLen:    10,
			value:     "",
			errMsg:    errTitleRequired,
		},
		{
			name:      "whitespace only",
			fieldName: "Title",
			maxLen:    10,
			value:     "   ",
			errMsg:    errTitleRequired,
		},
		{
			name:      "exceeds max length",
			fieldName: "Title",
			maxLen:    5,
			value:     "toolong",
			errMsg:    "Title cannot exceed 5 characters.",
		},
		{
			name:      "unicode counted by runes",
			fieldName: "Title",
			maxLen:    4,
			value:     "日本語の",
			errMsg:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Required(tt.fieldName, tt.maxLen)(tt.value)
			if got != tt.errMsg {
				t.Errorf("Required() = %q, want %q", got, tt.errMsg)
			}
		})
	}
}

func TestApply(t *testing.T) {
	errs := map[string]string{}
	Apply(errs, "title", "", Required("Title", 10))
	if errs["title"] != errTitleRequired {
		t.Fatalf("Apply did not record failure: %v", errs)
	}

	// An existing error is never overwritten.
	Apply(errs, "title", "toolongvalue", Required("Title", 5))
	if errs["title"] != errTitleRequired {
		t.Fatalf("Apply overwrote existing error: %v", errs)
	}

	Apply(errs, "email", "a@example.com", Required("Email", 64))
	if _, ok := errs["email"]; ok {
		t.Fatalf("Apply recorded error for valid value: %v", errs)
	}
}
