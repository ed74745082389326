package dto

// CreateBookingRequest is submitted by the booking form
type CreateBookingRequest struct {
	TourID          uint   `json:"tourId" form:"tourId" binding:"required"`
	ContactName     string `json:"contactName" form:"contactName" binding:"required,max=120"`
	ContactEmail    string `json:"contactEmail" form:"contactEmail" binding:"required,email"`
	ContactPhone    string `json:"contactPhone" form:"contactPhone" binding:"max=40"`
	TravelDate      string `json:"travelDate" form:"travelDate" binding:"required,isodate"`
	Guests          int    `json:"guests" form:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests" form:"specialRequests" binding:"max=2000"`
	Locale          string `json:"locale" form:"locale" binding:"omitempty,locale"`
}

// UpdateBookingRequest is the admin edit. Nil fields are left alone.
type UpdateBookingRequest struct {
	Status    *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	AdminNote *string `json:"adminNote" binding:"omitempty,max=2000"`
}

// BookingQuery filters the admin booking list
type BookingQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	TourID uint   `form:"tourId"`
	Q      string `form:"q"`
}

// BookingLookupQuery finds a booking without an account
type BookingLookupQuery struct {
	Reference string `form:"ref" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
}
