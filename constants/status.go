package constants

import "time"

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Announcement type
const (
	AnnouncementTypeBanner = "banner"
	AnnouncementTypePopup  = "popup"
)

// Popup type
const (
	PopupTypeDiscount     = "discount"
	PopupTypeNewFeature   = "new_feature"
	PopupTypeSystemUpdate = "system_update"
	PopupTypeGeneral      = "general"
)

// Cookies
const (
	LocaleCookieName   = "NEXT_LOCALE"
	LocaleCookieMaxAge = 365 * 24 * 60 * 60
	SessionCookieName  = "tour_admin_session"
	SessionMaxAge      = 7 * 24 * time.Hour
)

// Cache keys
const (
	CacheKeyActiveAnnouncements = "announcements:active"
	CacheKeyPublishedTours      = "tours:published"
)

const (
	LoginFailureDelay   = 1500 * time.Millisecond
	LoginMaxAttempts    = 5
	LoginAttemptWindow  = 15 * time.Minute
	TranslateTimeout    = 10 * time.Second
	AuthSyncDedupWindow = 2 * time.Second
	DefaultCurrency     = "THB"
	DateLayout          = "2006-01-02"
)
