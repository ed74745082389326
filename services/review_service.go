package services

import (
	"context"
	stderrors "errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/i18n"
	"tourbooking/models"
	"tourbooking/validator"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Submit stores a review awaiting approval. A booking reference, when given, must belong to the tour.
func (s *ReviewService) Submit(ctx context.Context, tourID uint, req dto.CreateReviewRequest) (*models.Review, error) {
	var tour models.Tour
	if err := s.db.WithContext(ctx).Where("id = ? AND is_published = ?", tourID, true).First(&tour).Error; err != nil {
		return nil, tourLoadError(err)
	}

	review := &models.Review{
		TourID:     tourID,
		AuthorName: strings.TrimSpace(req.AuthorName),
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		Locale:     req.Locale,
	}
	if !i18n.IsLocale(review.Locale) {
		review.Locale = i18n.DefaultLocale
	}

	if ref := strings.TrimSpace(req.BookingReference); ref != "" {
		var booking models.Booking
		err := s.db.WithContext(ctx).Where("reference_code = ? AND tour_id = ?", strings.ToUpper(ref), tourID).First(&booking).Error
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.Validation("Booking reference does not match this tour")
			}
			return nil, errors.Internal("Failed to load booking", err)
		}
		review.BookingID = &booking.ID
	}

	if err := validator.ValidateReview(review); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, errors.Internal("Failed to save review", err)
	}
	return review, nil
}

// Approved lists approved reviews of a tour, newest first. Errors yield an empty list.
func (s *ReviewService) Approved(ctx context.Context, tourID uint) []models.Review {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Where("tour_id = ? AND is_approved = ?", tourID, true).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return []models.Review{}
	}
	return reviews
}

// Summary is the count and average rating of approved reviews, rounded to one decimal
func (s *ReviewService) Summary(ctx context.Context, tourID uint) dto.ReviewSummary {
	var row struct {
		Count   int64
		Average float64
	}
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("tour_id = ? AND is_approved = ?", tourID, true).
		Scan(&row).Error
	if err != nil {
		return dto.ReviewSummary{}
	}
	return dto.ReviewSummary{Count: row.Count, Average: math.Round(row.Average*10) / 10}
}

// List is the admin view; pending selects unapproved reviews only
func (s *ReviewService) List(ctx context.Context, pending bool) ([]models.Review, error) {
	var reviews []models.Review
	tx := s.db.WithContext(ctx).Order("created_at desc")
	if pending {
		tx = tx.Where("is_approved = ?", false)
	}
	if err := tx.Find(&reviews).Error; err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	return reviews, nil
}

func (s *ReviewService) Approve(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Review not found")
		}
		return nil, errors.Internal("Failed to load review", err)
	}
	if err := s.db.WithContext(ctx).Model(&review).Update("is_approved", true).Error; err != nil {
		return nil, errors.Internal("Failed to approve review", err)
	}
	return &review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return errors.Internal("Failed to delete review", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.NotFound("Review not found")
	}
	return nil
}
