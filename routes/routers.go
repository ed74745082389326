package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourbooking/controllers"
	_ "tourbooking/docs"
	"tourbooking/i18n"
	"tourbooking/middleware"
	"tourbooking/response"
	"tourbooking/templates"
	"tourbooking/validator"
)

func SetupRoutes(router *gin.Engine, s *Services) error {
	validator.RegisterBindings()

	tmpl, err := templates.New()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(
		middleware.RequestID(),
		middleware.LocaleRouting(s.Sessions),
		middleware.OptionalUser(s.Tokens),
	)

	requireAdmin := middleware.RequireAdmin(s.Sessions)
	requireUser := middleware.RequireUser(s.Tokens)

	authController := controllers.NewAuthController(s.Auth, s.Sessions, s.Hub, s.Logger)
	tourController := controllers.NewTourController(s.Tours, s.Reviews)
	categoryController := controllers.NewCategoryController(s.Categories)
	announcementController := controllers.NewAnnouncementController(s.Announcements)
	bookingController := controllers.NewBookingController(s.Bookings)
	reviewController := controllers.NewReviewController(s.Reviews)
	translateController := controllers.NewTranslateController(s.Translator)
	uploadController := controllers.NewUploadController(s.Uploader)
	pages := controllers.NewPageController(s.Tours, s.Categories, s.Announcements, s.Bookings, s.Reviews, s.Config.AppURL, s.Logger)
	adminPages := controllers.NewAdminPageController(authController, s.Bookings, s.Tours, s.Announcements)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		sqlDB, err := s.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		response.Success(c, gin.H{"status": "ok"})
	})
	router.GET("/sitemap.xml", pages.Sitemap)
	router.GET("/robots.txt", pages.Robots)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public pages, one group per locale
	for _, locale := range i18n.Locales {
		g := router.Group("/" + locale)
		g.GET("", pages.Home)
		g.GET("/tours", pages.Catalog)
		g.GET("/tours/:slug", pages.TourDetail)
		g.POST("/tours/:slug/book", pages.Book)
		g.POST("/tours/:slug/reviews", pages.SubmitReview)
		g.GET("/booking/:ref", pages.Confirmation)
	}

	// Back office, gated by LocaleRouting
	router.GET("/admin", adminPages.Dashboard)
	router.GET("/admin/login", adminPages.LoginPage)
	router.POST("/admin/login", adminPages.LoginSubmit)
	router.POST("/admin/logout", adminPages.LogoutSubmit)

	router.GET("/ws/auth-sync", requireUser, authController.UserSocket)
	router.GET("/ws/admin-sync", requireAdmin, authController.AdminSocket)

	api := router.Group("/api")
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/logout", authController.Logout)
	api.GET("/auth/session", authController.GetSession)
	api.POST("/auth/sync", requireUser, authController.SyncAuth)

	api.GET("/tours", tourController.GetTours)
	api.GET("/tours/search", tourController.SearchTours)
	api.GET("/tours/slug/:slug", tourController.GetTourBySlug)
	api.GET("/tours/:id/reviews", tourController.GetTourReviews)
	api.POST("/tours/:id/reviews", tourController.SubmitReview)
	api.GET("/categories", categoryController.GetCategories)
	api.GET("/announcements/active", announcementController.GetActiveAnnouncements)
	api.POST("/bookings", bookingController.CreateBooking)
	api.GET("/bookings/lookup", bookingController.LookupBooking)
	api.GET("/bookings/mine", requireUser, bookingController.GetMyBookings)

	admin := api.Group("", requireAdmin)
	admin.GET("/tours/all", tourController.GetAllTours)
	admin.GET("/tours/:id", tourController.GetTourDetail)
	admin.POST("/tours", tourController.CreateTour)
	admin.PUT("/tours/:id", tourController.UpdateTour)
	admin.PUT("/tours/:id/categories", tourController.SetTourCategories)
	admin.DELETE("/tours/:id", tourController.DeleteTour)

	admin.POST("/categories", categoryController.CreateCategory)
	admin.PUT("/categories/:id", categoryController.UpdateCategory)
	admin.DELETE("/categories/:id", categoryController.DeleteCategory)

	admin.GET("/announcements", announcementController.GetAnnouncements)
	admin.GET("/announcements/:id", announcementController.GetAnnouncement)
	admin.POST("/announcements", announcementController.CreateAnnouncement)
	admin.PUT("/announcements/:id", announcementController.UpdateAnnouncement)
	admin.DELETE("/announcements/:id", announcementController.DeleteAnnouncement)
	admin.POST("/announcements/:id/activate", announcementController.ActivateAnnouncement)
	admin.POST("/announcements/:id/deactivate", announcementController.DeactivateAnnouncement)

	admin.GET("/bookings", bookingController.GetBookings)
	admin.GET("/bookings/export", bookingController.ExportBookings)
	admin.GET("/bookings/:id", bookingController.GetBookingDetail)
	admin.PUT("/bookings/:id", bookingController.UpdateBooking)
	admin.DELETE("/bookings/:id", bookingController.DeleteBooking)

	admin.GET("/reviews", reviewController.GetReviews)
	admin.POST("/reviews/:id/approve", reviewController.ApproveReview)
	admin.DELETE("/reviews/:id", reviewController.DeleteReview)

	admin.POST("/translate", translateController.Translate)
	admin.POST("/upload", uploadController.UploadImage)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.NotFound(c)
			return
		}
		pages.NotFound(c)
	})

	return nil
}
