package builders

import (
	"strings"

	"github.com/shopspring/decimal"

	"tourbooking/constants"
	"tourbooking/models"
)

// BookingBuilder assembles a pending booking for a tour step by step
type BookingBuilder struct {
	booking *models.Booking
	tour    *models.Tour
}

func NewBookingBuilder(tour *models.Tour) *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			TourID: tour.ID,
			Status: constants.BookingStatusPending,
			Guests: 1,
		},
		tour: tour,
	}
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	if userID != "" {
		b.booking.UserID = &userID
	}
	return b
}

func (b *BookingBuilder) WithContact(name, email, phone string) *BookingBuilder {
	b.booking.ContactName = strings.TrimSpace(name)
	b.booking.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	b.booking.ContactPhone = strings.TrimSpace(phone)
	return b
}

func (b *BookingBuilder) WithTravelDate(date string) *BookingBuilder {
	b.booking.TravelDate = strings.TrimSpace(date)
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.booking.Guests = guests
	return b
}

func (b *BookingBuilder) WithSpecialRequests(text string) *BookingBuilder {
	b.booking.SpecialRequests = strings.TrimSpace(text)
	return b
}

func (b *BookingBuilder) WithLocale(locale string) *BookingBuilder {
	b.booking.Locale = locale
	return b
}

// Build prices the booking from the tour's current unit price
func (b *BookingBuilder) Build() *models.Booking {
	b.booking.TotalPrice = b.tour.UnitPrice().Mul(decimal.NewFromInt(int64(b.booking.Guests))).Round(2)
	b.booking.Currency = b.tour.Currency
	if b.booking.Currency == "" {
		b.booking.Currency = constants.DefaultCurrency
	}
	return b.booking
}
