package validator

import (
	"regexp"
	"strings"
	"time"

	"tourbooking/constants"
	"tourbooking/errors"
	"tourbooking/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidateAnnouncement checks type, popup type and the discount link
func ValidateAnnouncement(a *models.Announcement) error {
	switch a.Type {
	case constants.AnnouncementTypeBanner, constants.AnnouncementTypePopup:
	case "":
		return errors.NewAppError(errors.ErrCodeRequiredField, "type is required", nil)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "type must be banner or popup", nil)
	}

	if strings.TrimSpace(a.MessageEn) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "messageEn is required", nil)
	}

	if a.Type == constants.AnnouncementTypeBanner {
		if a.PopupType != "" {
			return errors.NewAppError(errors.ErrCodeValidation, "popupType only applies to popups", nil)
		}
		return nil
	}

	switch a.PopupType {
	case constants.PopupTypeDiscount, constants.PopupTypeNewFeature, constants.PopupTypeSystemUpdate, constants.PopupTypeGeneral:
	case "":
		return errors.NewAppError(errors.ErrCodeRequiredField, "popupType is required for popups", nil)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "invalid popupType", nil)
	}

	if a.PopupType == constants.PopupTypeDiscount {
		if a.DiscountTourID == nil || *a.DiscountTourID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "discountTourId is required for discount popups", nil)
		}
		if a.DiscountPercentage == nil || *a.DiscountPercentage < 1 || *a.DiscountPercentage > 100 {
			return errors.NewAppError(errors.ErrCodeValidation, "discountPercentage must be between 1 and 100", nil)
		}
	}
	return nil
}

func ValidateTour(t *models.Tour) error {
	if strings.TrimSpace(t.TitleEn) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "titleEn is required", nil)
	}
	if !slugRegex.MatchString(t.Slug) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "slug may only contain lowercase letters, digits and dashes", nil)
	}
	if t.Price.IsNegative() {
		return errors.NewAppError(errors.ErrCodeValidation, "price must not be negative", nil)
	}
	if t.MaxGuests < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "maxGuests must not be negative", nil)
	}
	if err := t.ValidateDiscount(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	for _, d := range t.AvailableDates {
		if !IsValidDate(d) {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "availableDates must use YYYY-MM-DD: "+d, nil)
		}
	}
	return nil
}

// ValidateBooking checks a booking against the tour being booked. today is in YYYY-MM-DD.
func ValidateBooking(b *models.Booking, tour *models.Tour, today string) error {
	if strings.TrimSpace(b.ContactName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "contactName is required", nil)
	}
	if !IsValidEmail(b.ContactEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "contactEmail is invalid", nil)
	}
	if b.ContactPhone != "" && !phoneRegex.MatchString(b.ContactPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "contactPhone is invalid", nil)
	}
	if !IsValidDate(b.TravelDate) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "travelDate must use YYYY-MM-DD", nil)
	}
	// YYYY-MM-DD compares correctly as a string
	if b.TravelDate < today {
		return errors.NewAppError(errors.ErrCodeValidation, "travelDate must not be in the past", nil)
	}
	if len(tour.AvailableDates) > 0 && !contains(tour.AvailableDates, b.TravelDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "tour is not available on "+b.TravelDate, nil)
	}
	if b.Guests < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "guests must be at least 1", nil)
	}
	if tour.MaxGuests > 0 && b.Guests > tour.MaxGuests {
		return errors.NewAppError(errors.ErrCodeValidation, "too many guests for this tour", nil)
	}
	return nil
}

func ValidateReview(r *models.Review) error {
	if strings.TrimSpace(r.AuthorName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "authorName is required", nil)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "rating must be between 1 and 5", nil)
	}
	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidDate(s string) bool {
	_, err := time.Parse(constants.DateLayout, s)
	return err == nil
}

func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
