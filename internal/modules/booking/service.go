package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"guesthub/internal/domain"
	"guesthub/internal/repository"
)

type Service struct {
	bookings BookingRepository
	now      func() time.Time
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings, now: time.Now}
}

// CreateBooking stores the record as PENDING. The submitted total is kept
// as sent; pricing is the client's responsibility.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(domain.DateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: checkInDate: %v", ErrInvalidDates, err)
	}
	checkOut, err := time.Parse(domain.DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: checkOutDate: %v", ErrInvalidDates, err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDates)
	}

	b := &domain.Booking{
		FullName:        strings.TrimSpace(req.FullName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		RoomType:        req.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		TotalPrice:      req.TotalPrice,
		BookingDate:     s.bookingDate(req.BookingDate),
		Status:          domain.BookingPending,
	}
	if userID > 0 {
		uid := userID
		b.UserID = &uid
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Printf("booking_created id=%s user_id=%d room=%s total=%d", b.ID, userID, b.RoomType, b.TotalPrice)
	return b, nil
}

// ListBookings returns every booking for privileged roles and only the
// caller's own otherwise.
func (s *Service) ListBookings(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Booking, error) {
	if role.IsPrivileged() {
		return s.bookings.List(ctx)
	}
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	log.Printf("booking_deleted id=%s", id)
	return nil
}

func (s *Service) bookingDate(raw string) time.Time {
	for _, layout := range []string{domain.TimestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return s.now().UTC()
}
