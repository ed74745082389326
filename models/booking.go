package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ReferenceCode   string          `json:"referenceCode" gorm:"uniqueIndex;size:32;not null"`
	TourID          uint            `json:"tourId" gorm:"index;not null"`
	Tour            *Tour           `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	UserID          *string         `json:"userId,omitempty" gorm:"index;size:64"`
	ContactName     string          `json:"contactName" gorm:"not null"`
	ContactEmail    string          `json:"contactEmail" gorm:"not null"`
	ContactPhone    string          `json:"contactPhone"`
	TravelDate      string          `json:"travelDate"`
	Guests          int             `json:"guests" gorm:"not null;default:1"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:numeric(12,2);not null;default:0"`
	Currency        string          `json:"currency" gorm:"size:3;default:THB"`
	SpecialRequests string          `json:"specialRequests" gorm:"type:text"`
	Locale          string          `json:"locale" gorm:"size:8"`
	Status          string          `json:"status" gorm:"size:16;not null;default:pending;index"`
	AdminNote       string          `json:"adminNote" gorm:"type:text"`
	CreatedAt       time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
