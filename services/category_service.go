package services

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"

	"tourbooking/dto"
	"tourbooking/errors"
	"tourbooking/models"
)

type CategoryService struct {
	db         *gorm.DB
	translator *Translator
}

func NewCategoryService(db *gorm.DB, translator *Translator) *CategoryService {
	return &CategoryService{db: db, translator: translator}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name_en").Find(&categories).Error; err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, req dto.CategoryRequest) (*models.Category, error) {
	s.translate(ctx, &req)
	c := &models.Category{}
	if err := applyCategoryRequest(c, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, mapCategoryWriteError(err)
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req dto.CategoryRequest) (*models.Category, error) {
	s.translate(ctx, &req)
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, categoryLoadError(err)
	}
	if req.Slug == "" {
		req.Slug = c.Slug
	}
	if err := applyCategoryRequest(&c, req); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, mapCategoryWriteError(err)
	}
	return &c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.First(&c, id).Error; err != nil {
			return categoryLoadError(err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.TourCategory{}).Error; err != nil {
			return errors.Internal("Failed to unlink tours", err)
		}
		if err := tx.Delete(&c).Error; err != nil {
			return errors.Internal("Failed to delete category", err)
		}
		return nil
	})
}

func (s *CategoryService) translate(ctx context.Context, req *dto.CategoryRequest) {
	if !req.AutoTranslate || s.translator == nil {
		return
	}
	s.translator.FillMissing(ctx, []Field{
		{Source: req.NameEn, Target: "th", Dest: &req.NameTh},
		{Source: req.NameEn, Target: "zh", Dest: &req.NameZh},
	})
}

func applyCategoryRequest(c *models.Category, req dto.CategoryRequest) error {
	c.NameEn = strings.TrimSpace(req.NameEn)
	c.NameTh = req.NameTh
	c.NameZh = req.NameZh
	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(req.NameEn)
	}
	if c.NameEn == "" || slug == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "nameEn is required", nil)
	}
	c.Slug = slug
	return nil
}

func categoryLoadError(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound("Category not found")
	}
	return errors.Internal("Failed to load category", err)
}

func mapCategoryWriteError(err error) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewAppError(errors.ErrCodeConflict, "Category slug already in use", err)
	}
	return errors.Internal("Failed to save category", err)
}
