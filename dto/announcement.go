package dto

// AnnouncementRequest creates or replaces an announcement
type AnnouncementRequest struct {
	Type               string `json:"type" binding:"required,oneof=banner popup"`
	PopupType          string `json:"popupType" binding:"omitempty,oneof=discount new_feature system_update general"`
	TitleEn            string `json:"titleEn" binding:"max=200"`
	TitleTh            string `json:"titleTh" binding:"max=200"`
	TitleZh            string `json:"titleZh" binding:"max=200"`
	MessageEn          string `json:"messageEn" binding:"required"`
	MessageTh          string `json:"messageTh"`
	MessageZh          string `json:"messageZh"`
	LinkURL            string `json:"linkUrl" binding:"omitempty,max=500"`
	ImageURL           string `json:"imageUrl" binding:"omitempty,url"`
	IsActive           bool   `json:"isActive"`
	DiscountTourID     *uint  `json:"discountTourId"`
	DiscountPercentage *int   `json:"discountPercentage"`
	AutoTranslate      bool   `json:"autoTranslate"`
}

// ActiveAnnouncements is what the public site shows
type ActiveAnnouncements struct {
	Banner *AnnouncementView `json:"banner"`
	Popup  *AnnouncementView `json:"popup"`
}

// AnnouncementView is an announcement rendered for one locale
type AnnouncementView struct {
	ID                 uint   `json:"id"`
	Type               string `json:"type"`
	PopupType          string `json:"popupType,omitempty"`
	Title              string `json:"title"`
	Message            string `json:"message"`
	LinkURL            string `json:"linkUrl,omitempty"`
	ImageURL           string `json:"imageUrl,omitempty"`
	DiscountTourID     *uint  `json:"discountTourId,omitempty"`
	DiscountPercentage *int   `json:"discountPercentage,omitempty"`
}
