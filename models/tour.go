package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Tour struct {
	ID                 uint                        `json:"id" gorm:"primaryKey"`
	Slug               string                      `json:"slug" gorm:"uniqueIndex;size:160;not null"`
	TitleEn            string                      `json:"titleEn" gorm:"not null"`
	TitleTh            string                      `json:"titleTh"`
	TitleZh            string                      `json:"titleZh"`
	DescriptionEn      string                      `json:"descriptionEn" gorm:"type:text"` // markdown
	DescriptionTh      string                      `json:"descriptionTh" gorm:"type:text"`
	DescriptionZh      string                      `json:"descriptionZh" gorm:"type:text"`
	LocationEn         string                      `json:"locationEn"`
	LocationTh         string                      `json:"locationTh"`
	LocationZh         string                      `json:"locationZh"`
	Price              decimal.Decimal             `json:"price" gorm:"type:numeric(12,2);not null;default:0"`
	Currency           string                      `json:"currency" gorm:"size:3;default:THB"`
	Duration           string                      `json:"duration"`
	AvailableDates     datatypes.JSONSlice[string] `json:"availableDates"`
	MaxGuests          int                         `json:"maxGuests" gorm:"default:0"` // 0 means unlimited
	BannerImageURL     string                      `json:"bannerImageUrl"`
	GalleryURLs        datatypes.JSONSlice[string] `json:"galleryUrls"`
	IsDiscountActive   bool                        `json:"isDiscountActive" gorm:"default:false"`
	DiscountPercentage int                         `json:"discountPercentage" gorm:"default:0"`
	IsPublished        bool                        `json:"isPublished" gorm:"not null;default:false;index"`
	Categories         []Category                  `json:"categories,omitempty" gorm:"many2many:tour_categories;"`
	CreatedAt          time.Time                   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time                   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// Title returns the title for locale, falling back to English
func (t *Tour) Title(locale string) string {
	return pick(locale, t.TitleEn, t.TitleTh, t.TitleZh)
}

func (t *Tour) Description(locale string) string {
	return pick(locale, t.DescriptionEn, t.DescriptionTh, t.DescriptionZh)
}

func (t *Tour) Location(locale string) string {
	return pick(locale, t.LocationEn, t.LocationTh, t.LocationZh)
}

// EffectiveDiscount is the percentage applied to prices. It is zero unless the discount flag is set.
func (t *Tour) EffectiveDiscount() int {
	if !t.IsDiscountActive {
		return 0
	}
	return t.DiscountPercentage
}

// UnitPrice is the per-guest price after any active discount
func (t *Tour) UnitPrice() decimal.Decimal {
	pct := t.EffectiveDiscount()
	if pct <= 0 {
		return t.Price
	}
	factor := decimal.NewFromInt(int64(100 - pct)).Div(decimal.NewFromInt(100))
	return t.Price.Mul(factor).Round(2)
}

func (t *Tour) ValidateDiscount() error {
	if t.DiscountPercentage < 0 || t.DiscountPercentage > 100 {
		return fmt.Errorf("invalid discount percentage: %d, must be between 0 and 100", t.DiscountPercentage)
	}
	return nil
}

func pick(locale, en, th, zh string) string {
	switch locale {
	case "th":
		if th != "" {
			return th
		}
	case "zh":
		if zh != "" {
			return zh
		}
	}
	return en
}
