package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tourbooking/constants"
	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/models"
	"tourbooking/services/logger"
	"tourbooking/validator"
)

const publishedToursTTL = 10 * time.Minute

type TourService struct {
	db         *gorm.DB
	redis      *redis.Client
	translator *Translator
	logger     logger.Logger
}

type TourServiceOptions struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Translator *Translator
	Logger     logger.Logger
}

func NewTourService(opts TourServiceOptions) *TourService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &TourService{
		db:         opts.DB,
		redis:      opts.Redis,
		translator: opts.Translator,
		logger:     opts.Logger,
	}
}

// List returns a page of tours. Unpublished tours are only included when q.All is set.
func (s *TourService) List(ctx context.Context, q dto.TourQuery) ([]models.Tour, int64, error) {
	offset := q.Normalize()
	tx := s.db.WithContext(ctx).Model(&models.Tour{})
	if !q.All {
		tx = tx.Where("tours.is_published = ?", true)
	}
	if q.Category != "" {
		tx = tx.Joins("JOIN tour_categories ON tour_categories.tour_id = tours.id").
			Joins("JOIN categories ON categories.id = tour_categories.category_id").
			Where("categories.slug = ?", q.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Internal("Failed to count tours", err)
	}

	var tours []models.Tour
	if err := tx.Preload("Categories").
		Order("tours.created_at desc").
		Offset(offset).Limit(q.Limit).
		Find(&tours).Error; err != nil {
		return nil, 0, errors.Internal("Failed to list tours", err)
	}
	return tours, total, nil
}

// Published returns every published tour, cached in Redis. Errors yield an empty list.
func (s *TourService) Published(ctx context.Context) []models.Tour {
	var tours []models.Tour
	found, err := GetFromRedis(ctx, s.redis, constants.CacheKeyPublishedTours, &tours)
	if err != nil {
		s.logger.Warn("read tours cache: %v", err)
	}
	if found {
		return tours
	}

	if err := s.db.WithContext(ctx).Preload("Categories").
		Where("is_published = ?", true).
		Order("created_at desc").
		Find(&tours).Error; err != nil {
		s.logger.Error("load published tours: %v", err)
		return []models.Tour{}
	}
	if err := SetToRedis(ctx, s.redis, constants.CacheKeyPublishedTours, tours, publishedToursTTL); err != nil {
		s.logger.Warn("write tours cache: %v", err)
	}
	return tours
}

func (s *TourService) Get(ctx context.Context, id uint) (*models.Tour, error) {
	var tour models.Tour
	if err := s.db.WithContext(ctx).Preload("Categories").First(&tour, id).Error; err != nil {
		return nil, tourLoadError(err)
	}
	return &tour, nil
}

// GetBySlug finds a tour for the public site; unpublished tours are not found
func (s *TourService) GetBySlug(ctx context.Context, slug string) (*models.Tour, error) {
	var tour models.Tour
	if err := s.db.WithContext(ctx).Preload("Categories").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&tour).Error; err != nil {
		return nil, tourLoadError(err)
	}
	return &tour, nil
}

func (s *TourService) Search(ctx context.Context, query, locale string, limit int) []dto.TourSearchResult {
	return SearchTours(s.Published(ctx), query, locale, limit)
}

func (s *TourService) Create(ctx context.Context, req dto.TourRequest) (*models.Tour, error) {
	s.translate(ctx, &req)
	tour := &models.Tour{IsPublished: true}
	applyTourRequest(tour, req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := uniqueSlug(tx, req.Slug, req.TitleEn, 0)
		if err != nil {
			return err
		}
		tour.Slug = slug
		if err := validator.ValidateTour(tour); err != nil {
			return err
		}
		if err := tx.Omit("Categories").Create(tour).Error; err != nil {
			return mapTourWriteError(err)
		}
		return replaceCategories(tx, tour, req.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, tour.ID)
}

// Update replaces a tour. Category links are replaced when CategoryIDs is not nil.
func (s *TourService) Update(ctx context.Context, id uint, req dto.TourRequest) (*models.Tour, error) {
	s.translate(ctx, &req)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, id).Error; err != nil {
			return tourLoadError(err)
		}
		applyTourRequest(&tour, req)
		if err := keepPopupDiscount(tx, &tour); err != nil {
			return err
		}
		if req.Slug != "" && req.Slug != tour.Slug {
			slug, err := uniqueSlug(tx, req.Slug, req.TitleEn, tour.ID)
			if err != nil {
				return err
			}
			tour.Slug = slug
		}
		if err := validator.ValidateTour(&tour); err != nil {
			return err
		}
		if err := tx.Omit("Categories").Save(&tour).Error; err != nil {
			return mapTourWriteError(err)
		}
		if req.CategoryIDs != nil {
			return replaceCategories(tx, &tour, req.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// SetCategories replaces the category links of a tour
func (s *TourService) SetCategories(ctx context.Context, id uint, categoryIDs []uint) (*models.Tour, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, id).Error; err != nil {
			return tourLoadError(err)
		}
		return replaceCategories(tx, &tour, categoryIDs)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete removes a tour without bookings. Announcements linked to it lose the link and are deactivated.
func (s *TourService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tour models.Tour
		if err := tx.First(&tour, id).Error; err != nil {
			return tourLoadError(err)
		}

		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("tour_id = ?", id).Count(&bookings).Error; err != nil {
			return errors.Internal("Failed to count bookings", err)
		}
		if bookings > 0 {
			return errors.NewAppError(errors.ErrCodeConflict, "Tour has bookings; unpublish it instead", nil)
		}

		if err := tx.Model(&models.Announcement{}).Where("discount_tour_id = ?", id).Updates(map[string]interface{}{
			"discount_tour_id": nil,
			"is_active":        false,
		}).Error; err != nil {
			return errors.Internal("Failed to unlink announcements", err)
		}
		if err := tx.Model(&tour).Association("Categories").Clear(); err != nil {
			return errors.Internal("Failed to unlink categories", err)
		}
		if err := tx.Where("tour_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return errors.Internal("Failed to delete reviews", err)
		}
		if err := tx.Delete(&tour).Error; err != nil {
			return errors.Internal("Failed to delete tour", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TourService) translate(ctx context.Context, req *dto.TourRequest) {
	if !req.AutoTranslate || s.translator == nil {
		return
	}
	s.translator.FillMissing(ctx, []Field{
		{Source: req.TitleEn, Target: "th", Dest: &req.TitleTh},
		{Source: req.TitleEn, Target: "zh", Dest: &req.TitleZh},
		{Source: req.DescriptionEn, Target: "th", Dest: &req.DescriptionTh},
		{Source: req.DescriptionEn, Target: "zh", Dest: &req.DescriptionZh},
		{Source: req.LocationEn, Target: "th", Dest: &req.LocationTh},
		{Source: req.LocationEn, Target: "zh", Dest: &req.LocationZh},
	})
}

func (s *TourService) invalidate(ctx context.Context) {
	if err := DeleteFromRedis(ctx, s.redis, constants.CacheKeyPublishedTours, constants.CacheKeyActiveAnnouncements); err != nil {
		s.logger.Warn("invalidate tours cache: %v", err)
	}
}

func applyTourRequest(t *models.Tour, req dto.TourRequest) {
	t.TitleEn = strings.TrimSpace(req.TitleEn)
	t.TitleTh = req.TitleTh
	t.TitleZh = req.TitleZh
	t.DescriptionEn = req.DescriptionEn
	t.DescriptionTh = req.DescriptionTh
	t.DescriptionZh = req.DescriptionZh
	t.LocationEn = req.LocationEn
	t.LocationTh = req.LocationTh
	t.LocationZh = req.LocationZh
	t.Price = req.Price
	t.Currency = strings.ToUpper(req.Currency)
	if t.Currency == "" {
		t.Currency = constants.DefaultCurrency
	}
	t.Duration = req.Duration
	t.AvailableDates = datatypes.JSONSlice[string](nonNil(req.AvailableDates))
	t.MaxGuests = req.MaxGuests
	t.BannerImageURL = req.BannerImageURL
	t.GalleryURLs = datatypes.JSONSlice[string](nonNil(req.GalleryURLs))
	t.IsDiscountActive = req.IsDiscountActive
	t.DiscountPercentage = req.DiscountPercentage
	if req.IsPublished != nil {
		t.IsPublished = *req.IsPublished
	}
}

// keepPopupDiscount restores the discount an active discount popup mirrors onto t.
// The popup owns those fields until it is deactivated.
func keepPopupDiscount(tx *gorm.DB, t *models.Tour) error {
	var popups []models.Announcement
	if err := tx.Where("is_active = ? AND type = ? AND popup_type = ? AND discount_tour_id = ?",
		true, constants.AnnouncementTypePopup, constants.PopupTypeDiscount, t.ID).
		Limit(1).Find(&popups).Error; err != nil {
		return errors.Internal("Failed to load discount popup", err)
	}
	if len(popups) == 0 {
		return nil
	}
	t.IsDiscountActive = true
	t.DiscountPercentage = popups[0].DiscountPct()
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// uniqueSlug derives a slug from requested or title and appends -2, -3... until it is free
func uniqueSlug(tx *gorm.DB, requested, title string, selfID uint) (string, error) {
	base := Slugify(requested)
	if base == "" {
		base = Slugify(title)
	}
	if base == "" {
		base = "tour"
	}

	slug := base
	for i := 2; i < 100; i++ {
		var count int64
		if err := tx.Model(&models.Tour{}).Where("slug = ? AND id <> ?", slug, selfID).Count(&count).Error; err != nil {
			return "", errors.Internal("Failed to check slug", err)
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", errors.NewAppError(errors.ErrCodeConflict, "Could not find a free slug", nil)
}

func replaceCategories(tx *gorm.DB, tour *models.Tour, ids []uint) error {
	if len(ids) == 0 {
		if err := tx.Model(tour).Association("Categories").Clear(); err != nil {
			return errors.Internal("Failed to clear categories", err)
		}
		return nil
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return errors.Internal("Failed to load categories", err)
	}
	if len(categories) != len(uniqueIDs(ids)) {
		return errors.NewAppError(errors.ErrCodeValidation, "Unknown category id", nil)
	}
	if err := tx.Model(tour).Association("Categories").Replace(categories); err != nil {
		return errors.Internal("Failed to set categories", err)
	}
	return nil
}

func uniqueIDs(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func tourLoadError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewAppError(errors.ErrCodeDBNotFound, "Tour not found", errors.ErrTourNotFound)
	}
	return errors.Internal("Failed to load tour", err)
}

func mapTourWriteError(err error) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewAppError(errors.ErrCodeConflict, "Slug already in use", err)
	}
	return errors.Internal("Failed to save tour", err)
}
