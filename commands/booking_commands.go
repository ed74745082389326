package commands

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"tourbooking/builders"
	"tourbooking/errors"
	"tourbooking/models"
)

const maxReferenceAttempts = 5

// BookingCommand is one write against the bookings table
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand inserts a booking, drawing a new reference code on collision
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
	now     func() time.Time
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
		now:     time.Now,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		code, err := builders.NewReferenceCode(c.now())
		if err != nil {
			return errors.Internal("Failed to generate reference code", err)
		}
		c.booking.ReferenceCode = code

		err = c.db.WithContext(ctx).Create(c.booking).Error
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Internal("Failed to create booking", err)
		}
		c.booking.ID = 0
	}
	return errors.NewAppError(errors.ErrCodeConflict, "Could not allocate a reference code", nil)
}

// UpdateBookingCommand persists status and note changes
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute(ctx context.Context) error {
	err := c.db.WithContext(ctx).Model(c.booking).Updates(map[string]interface{}{
		"status":     c.booking.Status,
		"admin_note": c.booking.AdminNote,
	}).Error
	if err != nil {
		return errors.Internal("Failed to update booking", err)
	}
	return nil
}

type DeleteBookingCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID uint, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute(ctx context.Context) error {
	res := c.db.WithContext(ctx).Delete(&models.Booking{}, c.bookingID)
	if res.Error != nil {
		return errors.Internal("Failed to delete booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found", errors.ErrBookingNotFound)
	}
	return nil
}
