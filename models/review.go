package models

import "time"

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TourID     uint      `json:"tourId" gorm:"index;not null"`
	BookingID  *uint     `json:"bookingId,omitempty"`
	AuthorName string    `json:"authorName" gorm:"not null"`
	Rating     int       `json:"rating" gorm:"not null"` // 1..5
	Comment    string    `json:"comment" gorm:"type:text"`
	Locale     string    `json:"locale" gorm:"size:8"`
	IsApproved bool      `json:"isApproved" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
