package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "listing not found",
			},
			want: "listing not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to process",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to process: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode ErrorCode
		wantMsg  string
	}{
		{"NotFound", NotFound("listing not found"), ErrCodeNotFound, "listing not found"},
		{"NotFoundf", NotFoundf("listing %s not found", "abc"), ErrCodeNotFound, "listing abc not found"},
		{"Conflict", Conflict("username taken"), ErrCodeConflict, "username taken"},
		{"Conflictf", Conflictf("username %s taken", "alice"), ErrCodeConflict, "username alice taken"},
		{"Validation", Validation("title is required"), ErrCodeValidation, "title is required"},
		{"Unauthorized", Unauthorized("invalid credentials"), ErrCodeUnauthorized, "invalid credentials"},
		{"Forbidden", Forbidden("not allowed"), ErrCodeForbidden, "not allowed"},
		{"Unavailable", Unavailable("store unreachable"), ErrCodeUnavailable, "store unreachable"},
		{"Internal", Internal("boom"), ErrCodeInternal, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("%s().Code = %v, want %v", tt.name, tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("%s().Message = %v, want %v", tt.name, tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("title", "This field is required.")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "title" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "title")
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(nil, ErrCodeInternal, "ignored"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeUnavailable, "store unreachable")
	if err.Code != ErrCodeUnavailable {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeUnavailable)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrap() should preserve the cause for errors.Is")
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(cause, ErrCodeInternal, "save session %s", "sess-1")
	if err.Message != "save session sess-1" {
		t.Errorf("Wrapf().Message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrapf() should preserve the cause for errors.Is")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"IsNotFound true", IsNotFound, NotFound("x"), true},
		{"IsNotFound false", IsNotFound, Conflict("x"), false},
		{"IsConflict true", IsConflict, Conflict("x"), true},
		{"IsValidation true", IsValidation, Validation("x"), true},
		{"IsUnauthorized true", IsUnauthorized, Unauthorized("x"), true},
		{"IsForbidden true", IsForbidden, Forbidden("x"), true},
		{"IsUnavailable true", IsUnavailable, Unavailable("x"), true},
		{"IsInternal true", IsInternal, Internal("x"), true},
		{"wrapped cause matches", IsNotFound, Wrap(NotFound("x"), ErrCodeInternal, "outer"), false},
		{"plain error", IsNotFound, errors.New("x"), false},
		{"nil error", IsNotFound, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Forbidden("x")); got != ErrCodeForbidden {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeForbidden)
	}
	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestGetField(t *testing.T) {
	if got := GetField(ValidationField("email", "required")); got != "email" {
		t.Errorf("GetField() = %v, want email", got)
	}
	if got := GetField(errors.New("x")); got != "" {
		t.Errorf("GetField(plain) = %v, want empty", got)
	}
}
