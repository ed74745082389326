package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"tourbooking/builders"
	"tourbooking/commands"
	"tourbooking/constants"
	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/i18n"
	"tourbooking/models"
	"tourbooking/services/logger"
	"tourbooking/validator"
)

type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
	now    func() time.Time
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger,
		now:    time.Now,
	}
}

// Create books a published tour. userID is the hosted-auth subject, empty for guests.
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (*models.Booking, error) {
	var tour models.Tour
	if err := s.db.WithContext(ctx).Where("id = ? AND is_published = ?", req.TourID, true).First(&tour).Error; err != nil {
		return nil, tourLoadError(err)
	}

	locale := req.Locale
	if !i18n.IsLocale(locale) {
		locale = i18n.DefaultLocale
	}

	booking := builders.NewBookingBuilder(&tour).
		WithUser(userID).
		WithContact(req.ContactName, req.ContactEmail, req.ContactPhone).
		WithTravelDate(req.TravelDate).
		WithGuests(req.Guests).
		WithSpecialRequests(req.SpecialRequests).
		WithLocale(locale).
		Build()

	if err := validator.ValidateBooking(booking, &tour, s.now().Format(constants.DateLayout)); err != nil {
		return nil, err
	}
	if err := commands.NewCreateBookingCommand(booking, s.db).Execute(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("booking %s created for tour %d (%d guests)", booking.ReferenceCode, tour.ID, booking.Guests)
	booking.Tour = &tour
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).Preload("Tour").First(&b, id).Error; err != nil {
		return nil, bookingLoadError(err)
	}
	return &b, nil
}

func (s *BookingService) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	var b models.Booking
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if err := s.db.WithContext(ctx).Preload("Tour").Where("reference_code = ?", ref).First(&b).Error; err != nil {
		return nil, bookingLoadError(err)
	}
	return &b, nil
}

// Lookup finds a booking by reference for a guest who also knows the contact email
func (s *BookingService) Lookup(ctx context.Context, ref, email string) (*models.Booking, error) {
	b, err := s.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(b.ContactEmail, strings.TrimSpace(email)) {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found", errors.ErrBookingNotFound)
	}
	return b, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Preload("Tour").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return nil, errors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}

func (s *BookingService) filtered(ctx context.Context, q dto.BookingQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&models.Booking{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.TourID != 0 {
		tx = tx.Where("tour_id = ?", q.TourID)
	}
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		tx = tx.Where("LOWER(reference_code) LIKE ? OR LOWER(contact_name) LIKE ? OR LOWER(contact_email) LIKE ?", like, like, like)
	}
	return tx
}

func (s *BookingService) List(ctx context.Context, q dto.BookingQuery) ([]models.Booking, int64, error) {
	offset := q.Normalize()
	var total int64
	if err := s.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, errors.Internal("Failed to count bookings", err)
	}
	var bookings []models.Booking
	if err := s.filtered(ctx, q).Preload("Tour").
		Order("created_at desc").
		Offset(offset).Limit(q.Limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, errors.Internal("Failed to list bookings", err)
	}
	return bookings, total, nil
}

// Update applies an admin edit. Status changes go through the booking state machine.
func (s *BookingService) Update(ctx context.Context, id uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != nil {
		if !models.IsBookingStatus(*req.Status) {
			return nil, errors.Validation("Unknown booking status")
		}
		if err := models.TransitionTo(b, *req.Status); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), errors.ErrInvalidTransition)
		}
	}
	if req.AdminNote != nil {
		b.AdminNote = strings.TrimSpace(*req.AdminNote)
	}
	if err := commands.NewUpdateBookingCommand(b, s.db).Execute(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("booking %s updated: status=%s", b.ReferenceCode, b.Status)
	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	return commands.NewDeleteBookingCommand(id, s.db).Execute(ctx)
}

// CountByStatus feeds the admin dashboard
func (s *BookingService) CountByStatus(ctx context.Context) map[string]int64 {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	counts := map[string]int64{
		constants.BookingStatusPending:   0,
		constants.BookingStatusConfirmed: 0,
		constants.BookingStatusCancelled: 0,
	}
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		s.logger.Error("count bookings: %v", err)
		return counts
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts
}

func bookingLoadError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Booking not found", errors.ErrBookingNotFound)
	}
	return errors.Internal("Failed to load booking", err)
}
