package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/translate/v2"
	"gorm.io/gorm"

	"tourbooking/config"
	"tourbooking/constants"
	"tourbooking/services"
	"tourbooking/services/authsync"
	"tourbooking/services/logger"
)

// Services is what the handlers are built from
type Services struct {
	Config        *config.Config
	DB            *gorm.DB
	Logger        logger.Logger
	Sessions      *services.SessionManager
	Tokens        *services.TokenVerifier
	Translator    *services.Translator
	Limiter       services.RateLimiter
	Auth          *services.AuthService
	Tours         *services.TourService
	Categories    *services.CategoryService
	Announcements *services.AnnouncementService
	Bookings      *services.BookingService
	Reviews       *services.ReviewService
	Uploader      services.ImageUploader
	Dedup         *authsync.Deduper
	Hub           *authsync.Hub
}

// Backends are the connected clients; any of Redis, Cloudinary and Translate may be nil
type Backends struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Translate  *translate.Service
	Melody     *melody.Melody
}

func NewServices(cfg *config.Config, b Backends, log logger.Logger) (*Services, error) {
	if log == nil {
		log = logger.Nop{}
	}
	sessions, err := services.NewSessionManager(cfg.SessionSecret, cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	translator := services.NewTranslator(b.Translate, cfg.TranslateTimeout, log)
	limiter := services.NewRateLimiter(b.Redis, "login", constants.LoginMaxAttempts, constants.LoginAttemptWindow)
	dedup := authsync.NewDeduper(constants.AuthSyncDedupWindow, 0)

	return &Services{
		Config:     cfg,
		DB:         b.DB,
		Logger:     log,
		Sessions:   sessions,
		Tokens:     services.NewTokenVerifier(cfg.AuthJWTSecret, cfg.AuthURL),
		Translator: translator,
		Limiter:    limiter,
		Auth: services.NewAuthService(services.AuthServiceOptions{
			DB:      b.DB,
			Limiter: limiter,
			Logger:  log,
		}),
		Tours: services.NewTourService(services.TourServiceOptions{
			DB:         b.DB,
			Redis:      b.Redis,
			Translator: translator,
			Logger:     log,
		}),
		Categories: services.NewCategoryService(b.DB, translator),
		Announcements: services.NewAnnouncementService(services.AnnouncementServiceOptions{
			DB:         b.DB,
			Redis:      b.Redis,
			Translator: translator,
			Logger:     log,
		}),
		Bookings: services.NewBookingService(services.BookingServiceOptions{
			DB:     b.DB,
			Logger: log,
		}),
		Reviews:  services.NewReviewService(b.DB),
		Uploader: services.NewCloudinaryUploader(b.Cloudinary),
		Dedup:    dedup,
		Hub:      authsync.NewHub(b.Melody, dedup, log),
	}, nil
}
