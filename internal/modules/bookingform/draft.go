package bookingform

import (
	"strconv"
	"strings"
	"time"
)

// Form field names, as used on the wire and as FieldErrors keys.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldRoomType        = "roomType"
	FieldNumberOfGuests  = "numberOfGuests"
	FieldSpecialRequests = "specialRequests"
)

// Draft is the in-progress state of one booking form session. Zero
// CheckIn/CheckOut mean "not selected".
type Draft struct {
	FullName        string
	Email           string
	Phone           string
	RoomTypeID      string
	NumberOfGuests  int
	SpecialRequests string
	CheckIn         time.Time
	CheckOut        time.Time
}

// NewDraft returns the empty form a session starts with.
func NewDraft() Draft {
	return Draft{NumberOfGuests: 1}
}

func (d *Draft) set(name, value string) error {
	switch name {
	case FieldFullName:
		d.FullName = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldRoomType:
		d.RoomTypeID = value
	case FieldNumberOfGuests:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			n = 0
		}
		d.NumberOfGuests = n
	case FieldSpecialRequests:
		d.SpecialRequests = value
	default:
		return ErrUnknownField
	}
	return nil
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// String lists the errors one per line in form order.
func (fe FieldErrors) String() string {
	var b strings.Builder
	for _, f := range []string{FieldFullName, FieldEmail, FieldPhone, FieldRoomType, FieldNumberOfGuests, FieldSpecialRequests} {
		if m, ok := fe[f]; ok {
			b.WriteString(f)
			b.WriteString(": ")
			b.WriteString(m)
			b.WriteString("\n")
		}
	}
	return b.String()
}
