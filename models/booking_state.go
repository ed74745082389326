package models

import (
	"errors"

	"tourbooking/constants"
)

// BookingState guards status transitions of a booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState waits for the back office
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState returns the state for a status value
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}

// TransitionTo moves booking to target through its current state
func TransitionTo(booking *Booking, target string) error {
	if booking.Status == target {
		return nil
	}
	state := GetBookingState(booking.Status)
	switch target {
	case constants.BookingStatusConfirmed:
		return state.Confirm(booking)
	case constants.BookingStatusCancelled:
		return state.Cancel(booking)
	default:
		return errors.New("unknown booking status: " + target)
	}
}

func IsBookingStatus(status string) bool {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCancelled:
		return true
	}
	return false
}
