package bookingform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"guesthub/internal/pkg/apiclient"
)

var (
	ErrUnknownField     = errors.New("unknown booking form field")
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateOrder = errors.New("check-out must be after check-in")
	ErrValidation       = errors.New("booking form has invalid fields")
	ErrSubmitInProgress = errors.New("a booking submission is already in progress")
)

// User-facing notification texts.
const (
	msgMissingDates   = "Please select check-in and check-out dates"
	msgInvalidOrder   = "Check-out date must be after check-in date"
	msgFixErrors      = "Please fix the form errors"
	msgSubmitted      = "Booking submitted successfully! We'll contact you shortly."
	msgSubmitFailed   = "Failed to submit booking. Please try again or contact us directly."
	msgSubmitRejected = "Booking was not accepted. Please review your details or contact us directly."
)

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// SubmitError wraps a failed call to the booking API.
type SubmitError struct {
	Err error
}

func (e *SubmitError) Error() string { return "submit booking: " + e.Err.Error() }

func (e *SubmitError) Unwrap() error { return e.Err }

// Rejected reports that the API refused the booking (4xx) rather than
// failing to process it.
func (e *SubmitError) Rejected() bool {
	var se *apiclient.StatusError
	return errors.As(e.Err, &se) && se.IsClientError()
}

// StatusCode is the HTTP status of the failed call, or 0 when no response
// was received.
func (e *SubmitError) StatusCode() int {
	var se *apiclient.StatusError
	if errors.As(e.Err, &se) {
		return se.StatusCode
	}
	return 0
}

func (e *SubmitError) userMessage() string {
	if e.Rejected() {
		return msgSubmitRejected
	}
	return msgSubmitFailed
}
