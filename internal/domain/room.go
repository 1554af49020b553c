package domain

// RoomType is a catalog entry: a category of room and its nightly price in
// whole currency units.
type RoomType struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PricePerNight int64  `json:"pricePerNight"`
}
