package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tourbooking/constants"
	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/models"
	"tourbooking/services/logger"
	"tourbooking/validator"
)

const activeAnnouncementsTTL = 5 * time.Minute

type AnnouncementService struct {
	db         *gorm.DB
	redis      *redis.Client
	translator *Translator
	logger     logger.Logger
}

type AnnouncementServiceOptions struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Translator *Translator
	Logger     logger.Logger
}

func NewAnnouncementService(opts AnnouncementServiceOptions) *AnnouncementService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &AnnouncementService{
		db:         opts.DB,
		redis:      opts.Redis,
		translator: opts.Translator,
		logger:     opts.Logger,
	}
}

func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	var list []models.Announcement
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, errors.Internal("Failed to list announcements", err)
	}
	return list, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id uint) (*models.Announcement, error) {
	return loadAnnouncement(s.db.WithContext(ctx), id)
}

// Create stores a new announcement and activates it when requested
func (s *AnnouncementService) Create(ctx context.Context, req dto.AnnouncementRequest) (*models.Announcement, error) {
	s.translate(ctx, &req)
	a := &models.Announcement{}
	applyAnnouncementRequest(a, req)
	if err := validator.ValidateAnnouncement(a); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireDiscountTour(tx, a); err != nil {
			return err
		}
		if err := tx.Create(a).Error; err != nil {
			return errors.Internal("Failed to create announcement", err)
		}
		if req.IsActive {
			return activateTx(tx, a.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, a.ID)
}

// Update replaces an announcement. An active discount popup keeps its tour in sync,
// and a tour that loses the link has its discount cleared.
func (s *AnnouncementService) Update(ctx context.Context, id uint, req dto.AnnouncementRequest) (*models.Announcement, error) {
	s.translate(ctx, &req)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := loadAnnouncement(tx, id)
		if err != nil {
			return err
		}
		var previousTour *uint
		if a.IsActive && a.ControlsTourDiscount() {
			previousTour = a.DiscountTourID
		}

		applyAnnouncementRequest(a, req)
		if err := validator.ValidateAnnouncement(a); err != nil {
			return err
		}
		if err := requireDiscountTour(tx, a); err != nil {
			return err
		}

		// saved inactive first so a type change cannot collide with another active row
		a.IsActive = false
		if err := tx.Save(a).Error; err != nil {
			return mapWriteError(err, "Failed to update announcement")
		}
		if previousTour != nil {
			if err := clearTourDiscount(tx, *previousTour); err != nil {
				return err
			}
		}
		if req.IsActive {
			return activateTx(tx, a.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete removes an announcement, clearing the discount of a tour it controlled
func (s *AnnouncementService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := loadAnnouncement(tx, id)
		if err != nil {
			return err
		}
		if a.IsActive && a.ControlsTourDiscount() {
			if err := clearTourDiscount(tx, *a.DiscountTourID); err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Announcement{}, id).Error; err != nil {
			return errors.Internal("Failed to delete announcement", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Activate makes id the only active announcement of its type.
// The displaced rows and the discount mirroring happen in one transaction.
func (s *AnnouncementService) Activate(ctx context.Context, id uint) (*models.Announcement, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return activateTx(tx, id)
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("announcement %d activated", id)
	return s.Get(ctx, id)
}

// Deactivate turns id off. A discount popup that was active clears its tour's discount flag.
func (s *AnnouncementService) Deactivate(ctx context.Context, id uint) (*models.Announcement, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := loadAnnouncement(tx, id)
		if err != nil {
			return err
		}
		if !a.IsActive {
			return nil
		}
		if err := tx.Model(&models.Announcement{}).Where("id = ?", a.ID).Update("is_active", false).Error; err != nil {
			return errors.Internal("Failed to deactivate announcement", err)
		}
		if a.ControlsTourDiscount() {
			return clearTourDiscount(tx, *a.DiscountTourID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("announcement %d deactivated", id)
	return s.Get(ctx, id)
}

// ActiveAnnouncements returns the active banner and popup, served from Redis when cached
func (s *AnnouncementService) ActiveAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var cached []models.Announcement
	found, err := GetFromRedis(ctx, s.redis, constants.CacheKeyActiveAnnouncements, &cached)
	if err != nil {
		s.logger.Warn("read active announcements cache: %v", err)
	}
	if found {
		return cached, nil
	}

	var list []models.Announcement
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("type").Find(&list).Error; err != nil {
		s.logger.Error("load active announcements: %v", err)
		return []models.Announcement{}, nil
	}
	if err := SetToRedis(ctx, s.redis, constants.CacheKeyActiveAnnouncements, list, activeAnnouncementsTTL); err != nil {
		s.logger.Warn("write active announcements cache: %v", err)
	}
	return list, nil
}

// ActiveFor renders the active announcements for locale
func (s *AnnouncementService) ActiveFor(ctx context.Context, locale string) dto.ActiveAnnouncements {
	list, _ := s.ActiveAnnouncements(ctx)
	var out dto.ActiveAnnouncements
	for i := range list {
		a := &list[i]
		view := &dto.AnnouncementView{
			ID:                 a.ID,
			Type:               a.Type,
			PopupType:          a.PopupType,
			Title:              a.Title(locale),
			Message:            a.Message(locale),
			LinkURL:            a.LinkURL,
			ImageURL:           a.ImageURL,
			DiscountTourID:     a.DiscountTourID,
			DiscountPercentage: a.DiscountPercentage,
		}
		switch a.Type {
		case constants.AnnouncementTypeBanner:
			out.Banner = view
		case constants.AnnouncementTypePopup:
			out.Popup = view
		}
	}
	return out
}

// translate fills empty th/zh text of req; it runs outside any transaction
func (s *AnnouncementService) translate(ctx context.Context, req *dto.AnnouncementRequest) {
	if !req.AutoTranslate || s.translator == nil {
		return
	}
	s.translator.FillMissing(ctx, []Field{
		{Source: req.TitleEn, Target: "th", Dest: &req.TitleTh},
		{Source: req.TitleEn, Target: "zh", Dest: &req.TitleZh},
		{Source: req.MessageEn, Target: "th", Dest: &req.MessageTh},
		{Source: req.MessageEn, Target: "zh", Dest: &req.MessageZh},
	})
}

// invalidate drops the cached announcements and the tour list, whose discounts may have changed
func (s *AnnouncementService) invalidate(ctx context.Context) {
	if err := DeleteFromRedis(ctx, s.redis, constants.CacheKeyActiveAnnouncements, constants.CacheKeyPublishedTours); err != nil {
		s.logger.Warn("invalidate announcement cache: %v", err)
	}
}

func activateTx(tx *gorm.DB, id uint) error {
	target, err := loadAnnouncement(tx, id)
	if err != nil {
		return err
	}

	var displaced []models.Announcement
	if err := tx.Where("type = ? AND is_active = ? AND id <> ?", target.Type, true, target.ID).
		Find(&displaced).Error; err != nil {
		return errors.Internal("Failed to load active announcements", err)
	}

	ids := make([]uint, 0, len(displaced))
	for i := range displaced {
		d := &displaced[i]
		ids = append(ids, d.ID)
		if d.ControlsTourDiscount() {
			if err := clearTourDiscount(tx, *d.DiscountTourID); err != nil {
				return err
			}
		}
	}
	if len(ids) > 0 {
		if err := tx.Model(&models.Announcement{}).Where("id IN ?", ids).Update("is_active", false).Error; err != nil {
			return errors.Internal("Failed to deactivate announcements", err)
		}
	}

	if target.ControlsTourDiscount() {
		if err := requireDiscountTour(tx, target); err != nil {
			return err
		}
		if err := tx.Model(&models.Tour{}).Where("id = ?", *target.DiscountTourID).Updates(map[string]interface{}{
			"is_discount_active":  true,
			"discount_percentage": target.DiscountPct(),
		}).Error; err != nil {
			return errors.Internal("Failed to apply tour discount", err)
		}
	}

	if err := tx.Model(&models.Announcement{}).Where("id = ?", target.ID).Update("is_active", true).Error; err != nil {
		return mapWriteError(err, "Failed to activate announcement")
	}
	return nil
}

func clearTourDiscount(tx *gorm.DB, tourID uint) error {
	if err := tx.Model(&models.Tour{}).Where("id = ?", tourID).Update("is_discount_active", false).Error; err != nil {
		return errors.Internal("Failed to clear tour discount", err)
	}
	return nil
}

func requireDiscountTour(tx *gorm.DB, a *models.Announcement) error {
	if a.PopupType != constants.PopupTypeDiscount || a.DiscountTourID == nil {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Tour{}).Where("id = ?", *a.DiscountTourID).Count(&count).Error; err != nil {
		return errors.Internal("Failed to load tour", err)
	}
	if count == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "discountTourId does not reference a tour", nil)
	}
	return nil
}

func loadAnnouncement(db *gorm.DB, id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := db.First(&a, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Announcement not found", errors.ErrAnnouncementNotFound)
		}
		return nil, errors.Internal("Failed to load announcement", err)
	}
	return &a, nil
}

// mapWriteError turns a unique index violation into a conflict
func mapWriteError(err error, msg string) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewAppError(errors.ErrCodeConflict, "Another announcement of this type is already active", err)
	}
	return errors.Internal(msg, err)
}

func applyAnnouncementRequest(a *models.Announcement, req dto.AnnouncementRequest) {
	a.Type = req.Type
	a.PopupType = req.PopupType
	a.TitleEn = req.TitleEn
	a.TitleTh = req.TitleTh
	a.TitleZh = req.TitleZh
	a.MessageEn = req.MessageEn
	a.MessageTh = req.MessageTh
	a.MessageZh = req.MessageZh
	a.LinkURL = req.LinkURL
	a.ImageURL = req.ImageURL
	if req.Type == constants.AnnouncementTypeBanner {
		a.PopupType = ""
	}
	if a.PopupType == constants.PopupTypeDiscount {
		a.DiscountTourID = req.DiscountTourID
		a.DiscountPercentage = req.DiscountPercentage
	} else {
		a.DiscountTourID = nil
		a.DiscountPercentage = nil
	}
}
