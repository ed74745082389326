package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/middleware"
	"tourbooking/models"
	"tourbooking/services"
)

type adminLoginPage struct {
	Email string
	Error string
}

type adminDashboardPage struct {
	Admin         *services.AdminSession
	Counts        map[string]int64
	Bookings      []models.Booking
	Tours         []models.Tour
	Announcements []models.Announcement
}

// AdminPageController serves the back office HTML
type AdminPageController struct {
	AuthController
	Bookings      *services.BookingService
	Tours         *services.TourService
	Announcements *services.AnnouncementService
}

func NewAdminPageController(auth AuthController, bookings *services.BookingService, tours *services.TourService,
	announcements *services.AnnouncementService) AdminPageController {
	return AdminPageController{
		AuthController: auth,
		Bookings:       bookings,
		Tours:          tours,
		Announcements:  announcements,
	}
}

func (a AdminPageController) LoginPage(c *gin.Context) {
	if _, err := a.Sessions.FromRequest(c.Request); err == nil {
		c.Redirect(http.StatusFound, middleware.AdminPrefix)
		return
	}
	c.HTML(http.StatusOK, "admin_login.html", adminLoginPage{})
}

func (a AdminPageController) LoginSubmit(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusBadRequest, "admin_login.html", adminLoginPage{Email: input.Email, Error: bindingMessage(err)})
		return
	}

	admin, err := a.Auth.Login(c.Request.Context(), input.Email, input.Password, c.ClientIP())
	if err != nil {
		c.HTML(statusOf(err), "admin_login.html", adminLoginPage{Email: input.Email, Error: appMessage(err)})
		return
	}
	if err := a.startSession(c, admin); err != nil {
		a.Logger.Error("seal session: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_login.html", adminLoginPage{Email: input.Email, Error: "Something went wrong"})
		return
	}
	c.Redirect(http.StatusSeeOther, middleware.AdminPrefix)
}

func (a AdminPageController) LogoutSubmit(c *gin.Context) {
	a.endSession(c)
	c.Redirect(http.StatusSeeOther, middleware.AdminLoginPath)
}

func (a AdminPageController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	page := adminDashboardPage{
		Admin:  middleware.Admin(c),
		Counts: a.Bookings.CountByStatus(ctx),
	}

	bookings, _, err := a.Bookings.List(ctx, dto.BookingQuery{PageQuery: dto.PageQuery{Limit: 50}})
	if err != nil {
		a.Logger.Error("dashboard bookings: %v", err)
	}
	page.Bookings = bookings

	tours, _, err := a.Tours.List(ctx, dto.TourQuery{PageQuery: dto.PageQuery{Limit: 100}, All: true})
	if err != nil {
		a.Logger.Error("dashboard tours: %v", err)
	}
	page.Tours = tours

	announcements, err := a.Announcements.List(ctx)
	if err != nil {
		a.Logger.Error("dashboard announcements: %v", err)
	}
	page.Announcements = announcements

	c.HTML(http.StatusOK, "admin_dashboard.html", page)
}
