package dto

import "github.com/shopspring/decimal"

// TourRequest creates or replaces a tour
type TourRequest struct {
	Slug               string          `json:"slug" binding:"omitempty,max=160"`
	TitleEn            string          `json:"titleEn" binding:"required,max=200"`
	TitleTh            string          `json:"titleTh" binding:"max=200"`
	TitleZh            string          `json:"titleZh" binding:"max=200"`
	DescriptionEn      string          `json:"descriptionEn"`
	DescriptionTh      string          `json:"descriptionTh"`
	DescriptionZh      string          `json:"descriptionZh"`
	LocationEn         string          `json:"locationEn"`
	LocationTh         string          `json:"locationTh"`
	LocationZh         string          `json:"locationZh"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency" binding:"omitempty,len=3"`
	Duration           string          `json:"duration"`
	AvailableDates     []string        `json:"availableDates"`
	MaxGuests          int             `json:"maxGuests" binding:"min=0"`
	BannerImageURL     string          `json:"bannerImageUrl" binding:"omitempty,url"`
	GalleryURLs        []string        `json:"galleryUrls" binding:"omitempty,dive,url"`
	IsDiscountActive   bool            `json:"isDiscountActive"`
	DiscountPercentage int             `json:"discountPercentage" binding:"min=0,max=100"`
	IsPublished        *bool           `json:"isPublished"`
	CategoryIDs        []uint          `json:"categoryIds"`
	AutoTranslate      bool            `json:"autoTranslate"`
}

// TourQuery filters the public catalog
type TourQuery struct {
	PageQuery
	Category string `form:"category"`
	Q        string `form:"q"`
	All      bool   `form:"all"`
}

// TourSearchResult is one fuzzy search hit
type TourSearchResult struct {
	ID       uint   `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Location string `json:"location"`
}
