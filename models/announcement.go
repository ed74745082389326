package models

import (
	"time"

	"tourbooking/constants"
)

// Announcement is a site-wide banner or popup. At most one row per Type is active.
type Announcement struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Type               string    `json:"type" gorm:"size:16;not null;index"`
	PopupType          string    `json:"popupType" gorm:"size:32"`
	TitleEn            string    `json:"titleEn"`
	TitleTh            string    `json:"titleTh"`
	TitleZh            string    `json:"titleZh"`
	MessageEn          string    `json:"messageEn" gorm:"type:text"`
	MessageTh          string    `json:"messageTh" gorm:"type:text"`
	MessageZh          string    `json:"messageZh" gorm:"type:text"`
	LinkURL            string    `json:"linkUrl"`
	ImageURL           string    `json:"imageUrl"`
	IsActive           bool      `json:"isActive" gorm:"not null;default:false"`
	DiscountTourID     *uint     `json:"discountTourId"`
	DiscountPercentage *int      `json:"discountPercentage"`
	DiscountTour       *Tour     `json:"discountTour,omitempty" gorm:"foreignKey:DiscountTourID;constraint:OnDelete:SET NULL"`
	CreatedAt          time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (a *Announcement) Title(locale string) string {
	return pick(locale, a.TitleEn, a.TitleTh, a.TitleZh)
}

func (a *Announcement) Message(locale string) string {
	return pick(locale, a.MessageEn, a.MessageTh, a.MessageZh)
}

// ControlsTourDiscount reports whether this row drives a tour's discount flag
func (a *Announcement) ControlsTourDiscount() bool {
	return a.Type == constants.AnnouncementTypePopup &&
		a.PopupType == constants.PopupTypeDiscount &&
		a.DiscountTourID != nil
}

// DiscountPct returns the linked percentage or zero
func (a *Announcement) DiscountPct() int {
	if a.DiscountPercentage == nil {
		return 0
	}
	return *a.DiscountPercentage
}
