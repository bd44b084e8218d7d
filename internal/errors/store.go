package errors

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// MapStoreError maps document store errors to AppError instances.
// It handles the common driver error patterns:
// - mongo.ErrNoDocuments → NotFound
// - duplicate key errors → Conflict (field inferred from the index name)
// - network and driver timeout failures → Unavailable
// - context timeouts/cancellations → Timeout/Canceled
//
// If the error is not a recognized store error, it returns the original error.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return &AppError{
			Code:    ErrCodeNotFound,
			Message: "Resource not found",
			Cause:   err,
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return mapDuplicateKeyError(err)
	}

	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return &AppError{
			Code:    ErrCodeUnavailable,
			Message: "The data store is unavailable. Please try again.",
			Cause:   err,
		}
	}

	return err
}

// mapDuplicateKeyError maps a duplicate key write error to a Conflict error.
func mapDuplicateKeyError(err error) error {
	field := inferFieldFromIndex(err)

	return &AppError{
		Code:    ErrCodeConflict,
		Message: "This value already exists. Please choose a different one.",
		Field:   field,
		Cause:   err,
	}
}

// inferFieldFromIndex extracts the field name from a duplicate key error message.
// Index names follow the driver convention "field_1" / "field_-1"; the error
// message carries `index: field_1`. Returns empty string when inference fails.
func inferFieldFromIndex(err error) string {
	msg := err.Error()
	const marker = "index: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	name := msg[i+len(marker):]
	if j := strings.IndexAny(name, " \t"); j >= 0 {
		name = name[:j]
	}
	name = strings.TrimSuffix(name, "_-1")
	name = strings.TrimSuffix(name, "_1")
	if name == "" || strings.ContainsAny(name, "{}$") {
		return ""
	}
	return name
}
