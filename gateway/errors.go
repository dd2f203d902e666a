package gateway

import (
	"errors"
	"fmt"
)

// The gateway classifies every failure into one of four categories. The
// HTTP layer maps each category onto a status code; callers inside the
// process branch on them with the Is* helpers.

// ValidationError reports a request parameter rejected before any cache
// or upstream interaction took place.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// NotFoundError reports that upstream confirmed the requested identifier
// does not exist.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("coin %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// UpstreamTimeoutError reports that an upstream call exceeded its time
// bound.
type UpstreamTimeoutError struct {
	Operation string
	Err       error
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("%s: upstream request timed out: %v", e.Operation, e.Err)
}

func (e *UpstreamTimeoutError) Unwrap() error {
	return e.Err
}

// UpstreamUnavailableError reports that every eligible upstream source
// failed. The message carries the primary provider's error; the secondary
// failure, when a fallback was attempted, is kept on the struct.
type UpstreamUnavailableError struct {
	Operation string
	Primary   error
	Secondary error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("%s: upstream unavailable: %v", e.Operation, e.Primary)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Primary
}

// IsValidation reports whether err is a parameter validation failure
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err means the identifier does not exist
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUpstreamTimeout reports whether err was an upstream timeout
func IsUpstreamTimeout(err error) bool {
	var target *UpstreamTimeoutError
	return errors.As(err, &target)
}

// IsUpstreamUnavailable reports whether all eligible upstream sources
// failed
func IsUpstreamUnavailable(err error) bool {
	var target *UpstreamUnavailableError
	return errors.As(err, &target)
}
