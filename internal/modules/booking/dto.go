package booking

// CreateBookingRequest is the BookingRecord payload as posted by the form.
type CreateBookingRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	RoomType        string `json:"roomType" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
	TotalPrice      int64  `json:"totalPrice" binding:"min=0"`
	BookingDate     string `json:"bookingDate"`
}
