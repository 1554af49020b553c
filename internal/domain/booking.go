package domain

import "time"

const (
	// DateLayout is the wire format of check-in and check-out dates.
	DateLayout = "2006-01-02"
	// TimestampLayout matches a UTC ISO-8601 timestamp with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// BookingRecord is the payload posted to the booking API. It is built once
// from a validated draft and never mutated afterwards.
type BookingRecord struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomType        string `json:"roomType"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	SpecialRequests string `json:"specialRequests"`
	TotalPrice      int64  `json:"totalPrice"`
	BookingDate     string `json:"bookingDate"`
}

// Booking is a stored reservation on the API side.
type Booking struct {
	ID              string        `json:"id"`
	UserID          *int64        `json:"userId,omitempty"`
	FullName        string        `json:"fullName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	RoomType        string        `json:"roomType"`
	CheckIn         time.Time     `json:"checkIn"`
	CheckOut        time.Time     `json:"checkOut"`
	NumberOfGuests  int           `json:"numberOfGuests"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      int64         `json:"totalPrice"`
	BookingDate     time.Time     `json:"bookingDate"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}
