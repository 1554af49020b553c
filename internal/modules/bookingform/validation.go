package bookingform

import (
	"strings"

	"guesthub/internal/modules/catalog"
	"guesthub/internal/pkg/validator"
)

type bookingInput struct {
	FullName        string `json:"fullName" validate:"min=2,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Phone           string `json:"phone" validate:"min=10,max=20"`
	RoomType        string `json:"roomType" validate:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" validate:"min=1,max=10"`
	SpecialRequests string `json:"specialRequests" validate:"max=500"`
}

// messages[field][rule]
var messages = map[string]map[string]string{
	FieldFullName: {
		"min": "Name must be at least 2 characters",
		"max": "Name must be less than 100 characters",
	},
	FieldEmail: {
		"required": "Invalid email address",
		"email":    "Invalid email address",
		"max":      "Email must be less than 255 characters",
	},
	FieldPhone: {
		"min": "Phone must be at least 10 digits",
		"max": "Phone must be less than 20 characters",
	},
	FieldRoomType: {
		"required": "Please select a room type",
		"unknown":  "Please select a valid room type",
	},
	FieldNumberOfGuests: {
		"min": "At least 1 guest required",
		"max": "Maximum 10 guests allowed",
	},
	FieldSpecialRequests: {
		"max": "Special requests must be less than 500 characters",
	},
}

func normalize(d Draft) bookingInput {
	return bookingInput{
		FullName:        strings.TrimSpace(d.FullName),
		Email:           strings.TrimSpace(d.Email),
		Phone:           strings.TrimSpace(d.Phone),
		RoomType:        strings.TrimSpace(d.RoomTypeID),
		NumberOfGuests:  d.NumberOfGuests,
		SpecialRequests: strings.TrimSpace(d.SpecialRequests),
	}
}

// Validate checks every field of d and reports all violations at once.
// An empty result means the draft is valid.
func Validate(d Draft, c catalog.Catalog) FieldErrors {
	in := normalize(d)
	out := FieldErrors{}

	for field, rule := range validator.Validate(in) {
		out[field] = message(field, rule)
	}
	if in.RoomType != "" && !out.Has(FieldRoomType) {
		if _, ok := c.Lookup(in.RoomType); !ok {
			out[FieldRoomType] = message(FieldRoomType, "unknown")
		}
	}
	return out
}

func message(field, rule string) string {
	if m, ok := messages[field][rule]; ok {
		return m
	}
	return "Invalid value"
}
