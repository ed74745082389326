package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:120;not null"`
	NameEn    string    `json:"nameEn" gorm:"not null"`
	NameTh    string    `json:"nameTh"`
	NameZh    string    `json:"nameZh"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (c *Category) Name(locale string) string {
	return pick(locale, c.NameEn, c.NameTh, c.NameZh)
}

// TourCategory is the join row of tours and categories
type TourCategory struct {
	TourID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (TourCategory) TableName() string {
	return "tour_categories"
}
