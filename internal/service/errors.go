package service

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a missing or malformed request parameter.
	ErrValidation = errors.New("validation failed")
	// ErrUpstreamFetch marks a failure to obtain the seed dataset.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrStore marks a failed store read or write.
	ErrStore = errors.New("store operation failed")
	// ErrCancelled marks a request whose context ended before completion.
	ErrCancelled = errors.New("request cancelled")
)

// ValidationError describes one rejected parameter.
type ValidationError struct {
	Message  string
	Location string
	Value    string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %q", e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrMonthRequired is returned when a report that needs a month gets none.
var ErrMonthRequired = &ValidationError{Message: "Month parameter is required", Location: "query.month"}

func invalidMonth(raw string) error {
	return &ValidationError{Message: "invalid month parameter", Location: "query.month", Value: raw}
}

// storeError classifies a store failure, keeping both the category and the cause.
func storeError(op string, err error) error {
	if isContextError(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrCancelled, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
