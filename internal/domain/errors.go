package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an article id is unknown to the store.
var ErrNotFound = errors.New("article not found")

// InvalidTransitionError is returned when a status change would skip or
// reverse the lifecycle ordering.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// ValidationError wraps a field-level validation failure detected before
// any store mutation.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GenerationFailedError is returned when the text generator produced an
// unusable response. The underlying error is preserved for diagnostics.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// IsGenerationFailed reports whether err is a GenerationFailedError.
func IsGenerationFailed(err error) bool {
	var gfe *GenerationFailedError
	return errors.As(err, &gfe)
}

// PublishFailedError is returned when the publishing backend rejected a
// publish attempt. The article keeps its prior status.
type PublishFailedError struct {
	Err error
}

func (e *PublishFailedError) Error() string {
	return fmt.Sprintf("publish failed: %v", e.Err)
}

func (e *PublishFailedError) Unwrap() error { return e.Err }

// IsPublishFailed reports whether err is a PublishFailedError.
func IsPublishFailed(err error) bool {
	var pfe *PublishFailedError
	return errors.As(err, &pfe)
}
