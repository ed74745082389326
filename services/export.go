package services

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/models"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Reference", "Tour", "Travel date", "Guests", "Total", "Currency",
	"Status", "Contact name", "Contact email", "Contact phone", "Locale", "Special requests", "Admin note", "Created at",
}

// ExportBookings writes every booking matching q as an xlsx workbook to w
func (s *BookingService) ExportBookings(ctx context.Context, q dto.BookingQuery, w io.Writer) error {
	var bookings []models.Booking
	if err := s.filtered(ctx, q).Preload("Tour").Order("created_at desc").Find(&bookings).Error; err != nil {
		return errors.Internal("Failed to load bookings", err)
	}
	return WriteBookingsXLSX(bookings, w)
}

func WriteBookingsXLSX(bookings []models.Booking, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return errors.Internal("Failed to prepare sheet", err)
	}

	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(exportSheet, "A1", last, style)
	}

	for i, b := range bookings {
		title := ""
		if b.Tour != nil {
			title = b.Tour.TitleEn
		}
		total, _ := b.TotalPrice.Float64()
		values := []interface{}{
			b.ReferenceCode, title, b.TravelDate, b.Guests, total, b.Currency,
			b.Status, b.ContactName, b.ContactEmail, b.ContactPhone, b.Locale, b.SpecialRequests, b.AdminNote,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "N", 18); err != nil {
		return errors.Internal("Failed to format sheet", err)
	}
	if err := f.Write(w); err != nil {
		return errors.Internal("Failed to write workbook", err)
	}
	return nil
}
