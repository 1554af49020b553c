package bookingform

import (
	"context"

	"guesthub/internal/domain"
)

// BookingSender delivers a booking record to the booking API.
type BookingSender interface {
	CreateBooking(ctx context.Context, rec domain.BookingRecord) error
}

// Notifier shows short user-facing messages (toasts).
type Notifier interface {
	Success(message string)
	Error(message string)
}
