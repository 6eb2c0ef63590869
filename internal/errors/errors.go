package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/reclaimhq/reclaim/internal/logger"
)

// Kind classifies an application error. Every fault surfaced to a user maps
// onto exactly one kind, and the display message and recovery suggestion are
// derived from the kind alone.
type Kind int

const (
	KindUnknown Kind = iota
	KindDataFetchFailure
	KindDataSaveFailure
	KindDataDeleteFailure
	KindValidationFailed
	KindStreakNotFound
	KindJournalEntryNotFound
)

// AppError is the application error taxonomy. Detail carries
// operation-specific context and is folded into the message; it never changes
// which recovery suggestion is shown.
type AppError struct {
	Kind   Kind
	Detail string
	cause  error
}

var (
	// ErrStreakNotFound is the sentinel for errors.Is checks against
	// streak-lookup failures.
	ErrStreakNotFound = &AppError{Kind: KindStreakNotFound}
	// ErrJournalEntryNotFound is the sentinel for missing journal entries.
	ErrJournalEntryNotFound = &AppError{Kind: KindJournalEntryNotFound}
)

func DataFetchFailure(detail string, cause error) *AppError {
	return &AppError{Kind: KindDataFetchFailure, Detail: detail, cause: cause}
}

func DataSaveFailure(detail string, cause error) *AppError {
	return &AppError{Kind: KindDataSaveFailure, Detail: detail, cause: cause}
}

func DataDeleteFailure(detail string, cause error) *AppError {
	return &AppError{Kind: KindDataDeleteFailure, Detail: detail, cause: cause}
}

func ValidationFailed(detail string) *AppError {
	return &AppError{Kind: KindValidationFailed, Detail: detail}
}

func StreakNotFound() *AppError {
	return &AppError{Kind: KindStreakNotFound}
}

func JournalEntryNotFound() *AppError {
	return &AppError{Kind: KindJournalEntryNotFound}
}

func Unknown(detail string, cause error) *AppError {
	return &AppError{Kind: KindUnknown, Detail: detail, cause: cause}
}

func (e *AppError) Error() string {
	switch e.Kind {
	case KindDataFetchFailure:
		return fmt.Sprintf("unable to load data: %s", e.Detail)
	case KindDataSaveFailure:
		return fmt.Sprintf("unable to save: %s", e.Detail)
	case KindDataDeleteFailure:
		return fmt.Sprintf("unable to delete: %s", e.Detail)
	case KindValidationFailed:
		return fmt.Sprintf("validation failed: %s", e.Detail)
	case KindStreakNotFound:
		return "no active streak found"
	case KindJournalEntryNotFound:
		return "journal entry not found"
	default:
		return fmt.Sprintf("an unexpected error occurred: %s", e.Detail)
	}
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches on kind so callers can compare against the sentinels without
// caring about detail text.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !stderrors.As(target, &appErr) {
		return false
	}
	return e.Kind == appErr.Kind
}

// RecoverySuggestion returns a user-facing hint for getting past the error.
func (e *AppError) RecoverySuggestion() string {
	switch e.Kind {
	case KindDataFetchFailure:
		return "Please try again or restart the app."
	case KindDataSaveFailure:
		return "Make sure you have enough storage space and try again."
	case KindDataDeleteFailure:
		return "Please try again."
	case KindValidationFailed:
		return "Please correct the highlighted fields."
	case KindStreakNotFound:
		return "Start a new streak to begin tracking."
	case KindJournalEntryNotFound:
		return "The entry may have been deleted."
	default:
		return "Please try again or restart the app."
	}
}

// From wraps an arbitrary error into the taxonomy. AppErrors pass through
// unchanged; anything else becomes KindUnknown.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Unknown(err.Error(), err)
}

// Log records an error with a context label identifying the originating
// operation, e.g. "streak.ResetStreak".
func Log(err error, context string) {
	if err == nil {
		return
	}
	logger.Error("Operation failed", "context", context, "error", From(err).Error())
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1. If the error
// carries a recovery suggestion, it is printed below the message.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		if suggestion := From(err).RecoverySuggestion(); suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s\n", suggestion)
		}
		os.Exit(1)
	}
}
