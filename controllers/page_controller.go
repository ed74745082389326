package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/i18n"
	"tourbooking/middleware"
	"tourbooking/models"
	"tourbooking/services"
	"tourbooking/services/logger"
)

const homeTourCount = 6

// PageData is the view model of every public page
type PageData struct {
	Locale        string
	Title         string
	Description   string
	Canonical     string
	Path          string
	Alternates    []services.Alternate
	Announcements dto.ActiveAnnouncements

	Tours       []TourCard
	Categories  []models.Category
	Query       string
	Category    string
	Tour        *TourDetail
	Form        dto.CreateBookingRequest
	Error       string
	Reviews     []models.Review
	Summary     dto.ReviewSummary
	ReviewSent  bool
	ReviewError string
	Booking     *models.Booking
	TourTitle   string
}

// TourCard is a tour listed in the catalog, localized
type TourCard struct {
	Locale        string
	Slug          string
	Title         string
	Location      string
	Image         string
	Price         string
	OriginalPrice string
	Discount      int
}

// TourDetail is a tour page, localized
type TourDetail struct {
	TourCard
	ID          uint
	Description string
	Duration    string
	Gallery     []string
	Dates       []string
	MaxGuests   int
}

func formatMoney(t *models.Tour, unit bool) string {
	amount := t.Price
	if unit {
		amount = t.UnitPrice()
	}
	return t.Currency + " " + amount.StringFixedBank(2)
}

func newTourCard(t *models.Tour, locale string) TourCard {
	return TourCard{
		Locale:        locale,
		Slug:          t.Slug,
		Title:         t.Title(locale),
		Location:      t.Location(locale),
		Image:         t.BannerImageURL,
		Price:         formatMoney(t, true),
		OriginalPrice: formatMoney(t, false),
		Discount:      t.EffectiveDiscount(),
	}
}

func newTourDetail(t *models.Tour, locale string) *TourDetail {
	return &TourDetail{
		TourCard:    newTourCard(t, locale),
		ID:          t.ID,
		Description: t.Description(locale),
		Duration:    t.Duration,
		Gallery:     t.GalleryURLs,
		Dates:       t.AvailableDates,
		MaxGuests:   t.MaxGuests,
	}
}

type PageController struct {
	Tours         *services.TourService
	Categories    *services.CategoryService
	Announcements *services.AnnouncementService
	Bookings      *services.BookingService
	Reviews       *services.ReviewService
	AppURL        string
	Logger        logger.Logger
}

func NewPageController(tours *services.TourService, categories *services.CategoryService, announcements *services.AnnouncementService,
	bookings *services.BookingService, reviews *services.ReviewService, appURL string, log logger.Logger) PageController {
	if log == nil {
		log = logger.Nop{}
	}
	return PageController{
		Tours:         tours,
		Categories:    categories,
		Announcements: announcements,
		Bookings:      bookings,
		Reviews:       reviews,
		AppURL:        strings.TrimRight(appURL, "/"),
		Logger:        log,
	}
}

// page fills the fields shared by every public page
func (p PageController) page(c *gin.Context, title string) *PageData {
	locale := middleware.Locale(c)
	path := i18n.StripLocale(c.Request.URL.Path)
	if path == "/" {
		path = ""
	}
	if title == "" {
		title = i18n.T(locale, "site.title")
	} else {
		title += " | " + i18n.T(locale, "site.title")
	}
	return &PageData{
		Locale:        locale,
		Title:         title,
		Description:   i18n.T(locale, "site.tagline"),
		Canonical:     p.AppURL + "/" + locale + path,
		Path:          path,
		Alternates:    services.Alternates(p.AppURL, path),
		Announcements: p.Announcements.ActiveFor(c.Request.Context(), locale),
	}
}

func (p PageController) categories(c *gin.Context) []models.Category {
	list, err := p.Categories.List(c.Request.Context())
	if err != nil {
		p.Logger.Warn("load categories: %v", err)
	}
	return list
}

func (p PageController) Home(c *gin.Context) {
	data := p.page(c, "")
	published := p.Tours.Published(c.Request.Context())
	for i := range published {
		if i == homeTourCount {
			break
		}
		data.Tours = append(data.Tours, newTourCard(&published[i], data.Locale))
	}
	data.Categories = p.categories(c)
	c.HTML(http.StatusOK, "home.html", data)
}

// Catalog lists published tours, filtered by ?category= or searched with ?q=
func (p PageController) Catalog(c *gin.Context) {
	ctx := c.Request.Context()
	data := p.page(c, i18n.T(middleware.Locale(c), "tours.all"))
	data.Categories = p.categories(c)
	data.Category = c.Query("category")
	data.Query = strings.TrimSpace(c.Query("q"))

	published := p.Tours.Published(ctx)
	byID := make(map[uint]*models.Tour, len(published))
	for i := range published {
		byID[published[i].ID] = &published[i]
	}

	switch {
	case data.Query != "":
		for _, hit := range p.Tours.Search(ctx, data.Query, data.Locale, 24) {
			if t, ok := byID[hit.ID]; ok {
				data.Tours = append(data.Tours, newTourCard(t, data.Locale))
			}
		}
	case data.Category != "":
		tours, _, err := p.Tours.List(ctx, dto.TourQuery{
			PageQuery: dto.PageQuery{Limit: 100},
			Category:  data.Category,
		})
		if err != nil {
			p.Logger.Warn("list tours in %s: %v", data.Category, err)
		}
		for i := range tours {
			data.Tours = append(data.Tours, newTourCard(&tours[i], data.Locale))
		}
	default:
		for i := range published {
			data.Tours = append(data.Tours, newTourCard(&published[i], data.Locale))
		}
	}
	c.HTML(http.StatusOK, "catalog.html", data)
}

// tourPage loads the tour named by :slug into a page, or renders 404
func (p PageController) tourPage(c *gin.Context) (*PageData, bool) {
	ctx := c.Request.Context()
	tour, err := p.Tours.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		p.NotFound(c)
		return nil, false
	}
	locale := middleware.Locale(c)
	data := p.page(c, tour.Title(locale))
	data.Canonical = p.AppURL + "/" + locale + "/tours/" + tour.Slug
	data.Path = "/tours/" + tour.Slug
	data.Alternates = services.Alternates(p.AppURL, data.Path)
	data.Tour = newTourDetail(tour, locale)
	data.Reviews = p.Reviews.Approved(ctx, tour.ID)
	data.Summary = p.Reviews.Summary(ctx, tour.ID)
	return data, true
}

func (p PageController) TourDetail(c *gin.Context) {
	data, ok := p.tourPage(c)
	if !ok {
		return
	}
	data.ReviewSent = c.Query("review") == "sent"
	c.HTML(http.StatusOK, "tour.html", data)
}

// Book handles the booking form and redirects to the confirmation page
func (p PageController) Book(c *gin.Context) {
	data, ok := p.tourPage(c)
	if !ok {
		return
	}

	var form dto.CreateBookingRequest
	err := c.ShouldBind(&form)
	form.TourID = data.Tour.ID
	form.Locale = data.Locale
	data.Form = form
	if err != nil {
		data.Error = i18n.T(data.Locale, "booking.error")
		c.HTML(http.StatusBadRequest, "tour.html", data)
		return
	}

	userID := ""
	if u := middleware.User(c); u != nil {
		userID = u.Subject
	}
	booking, err := p.Bookings.Create(c.Request.Context(), form, userID)
	if err != nil {
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			p.Logger.Error("create booking from form: %v", err)
			data.Error = i18n.T(data.Locale, "booking.failed")
		} else {
			p.Logger.Info("booking form rejected: %v", err)
			data.Error = i18n.T(data.Locale, "booking.error")
		}
		c.HTML(status, "tour.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+data.Locale+"/booking/"+booking.ReferenceCode)
}

func (p PageController) SubmitReview(c *gin.Context) {
	data, ok := p.tourPage(c)
	if !ok {
		return
	}
	var form dto.CreateReviewRequest
	if err := c.ShouldBind(&form); err != nil {
		data.ReviewError = bindingMessage(err)
		c.HTML(http.StatusBadRequest, "tour.html", data)
		return
	}
	form.Locale = data.Locale
	if _, err := p.Reviews.Submit(c.Request.Context(), data.Tour.ID, form); err != nil {
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			p.Logger.Error("submit review from form: %v", err)
		}
		data.ReviewError = appMessage(err)
		c.HTML(status, "tour.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/"+data.Locale+"/tours/"+data.Tour.Slug+"?review=sent")
}

// Confirmation shows a booking by its reference code
func (p PageController) Confirmation(c *gin.Context) {
	booking, err := p.Bookings.GetByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		p.NotFound(c)
		return
	}
	data := p.page(c, booking.ReferenceCode)
	data.Booking = booking
	if booking.Tour != nil {
		data.TourTitle = booking.Tour.Title(data.Locale)
	}
	c.HTML(http.StatusOK, "booking.html", data)
}

// NotFound renders the localized 404 page
func (p PageController) NotFound(c *gin.Context) {
	if _, ok := c.Get(middleware.ContextLocale); !ok {
		if l, ok := i18n.FromPath(c.Request.URL.Path); ok {
			c.Set(middleware.ContextLocale, l)
		} else {
			c.Set(middleware.ContextLocale, i18n.Resolve(c.Request))
		}
	}
	data := p.page(c, i18n.T(middleware.Locale(c), "notFound.title"))
	c.HTML(http.StatusNotFound, "not_found.html", data)
}

// Sitemap lists every locale of the home page, catalog and published tours
func (p PageController) Sitemap(c *gin.Context) {
	body, err := services.Sitemap(p.AppURL, p.Tours.Published(c.Request.Context()), time.Now())
	if err != nil {
		p.Logger.Error("build sitemap: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (p PageController) Robots(c *gin.Context) {
	c.String(http.StatusOK, services.RobotsTxt(p.AppURL))
}
