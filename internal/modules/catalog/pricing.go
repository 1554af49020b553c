package catalog

import "time"

const day = 24 * time.Hour

// Quote is the price summary shown under the booking form.
type Quote struct {
	RoomTypeID    string `json:"roomTypeId"`
	RoomName      string `json:"roomName"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"pricePerNight"`
	Total         int64  `json:"total"`
}

// Nights returns the billable night count between two dates. A partial day
// always counts as a full night. Zero dates yield 0; the result is negative
// when checkOut precedes checkIn.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	d := checkOut.Sub(checkIn)
	n := d / day
	if d%day > 0 {
		n++
	}
	return int(n)
}

// ComputeTotal prices a stay. It never returns a negative amount.
func ComputeTotal(checkIn, checkOut time.Time, roomTypeID string, c Catalog) int64 {
	return QuoteStay(checkIn, checkOut, roomTypeID, c).Total
}

func QuoteStay(checkIn, checkOut time.Time, roomTypeID string, c Catalog) Quote {
	q := Quote{RoomTypeID: roomTypeID}
	if checkIn.IsZero() || checkOut.IsZero() {
		return q
	}
	rt, ok := c.Lookup(roomTypeID)
	if !ok {
		return q
	}
	q.RoomName = rt.Name
	q.PricePerNight = rt.PricePerNight
	q.Nights = Nights(checkIn, checkOut)
	if q.Nights <= 0 {
		return q
	}
	q.Total = int64(q.Nights) * rt.PricePerNight
	return q
}
