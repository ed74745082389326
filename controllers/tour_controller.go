package controllers

import (
	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/i18n"
	"tourbooking/response"
	"tourbooking/services"
)

type TourController struct {
	Tours   *services.TourService
	Reviews *services.ReviewService
}

func NewTourController(tours *services.TourService, reviews *services.ReviewService) TourController {
	return TourController{Tours: tours, Reviews: reviews}
}

// GetTours godoc
// @Summary  List published tours
// @Tags     tours
// @Param    category query string false "category slug"
// @Param    page     query int    false "page"
// @Param    limit    query int    false "page size"
// @Success  200 {object} response.Response
// @Router   /api/tours [get]
func (t TourController) GetTours(c *gin.Context) {
	var q dto.TourQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}
	q.All = false
	t.list(c, q)
}

// GetAllTours is the admin catalog including unpublished tours
func (t TourController) GetAllTours(c *gin.Context) {
	var q dto.TourQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}
	q.All = true
	t.list(c, q)
}

func (t TourController) list(c *gin.Context, q dto.TourQuery) {
	tours, total, err := t.Tours.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithPagination(c, tours, q.Page, q.Limit, int(total))
}

// GetTourBySlug godoc
// @Summary  Get a published tour by slug
// @Tags     tours
// @Param    slug path string true "tour slug"
// @Success  200 {object} response.Response
// @Failure  404 {object} response.ErrorResponse
// @Router   /api/tours/slug/{slug} [get]
func (t TourController) GetTourBySlug(c *gin.Context) {
	tour, err := t.Tours.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tour)
}

func (t TourController) GetTourDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tour, err := t.Tours.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tour)
}

// SearchTours godoc
// @Summary  Fuzzy search published tours by title and location
// @Tags     tours
// @Param    q      query string true  "query"
// @Param    locale query string false "en, th or zh"
// @Success  200 {object} response.Response
// @Router   /api/tours/search [get]
func (t TourController) SearchTours(c *gin.Context) {
	locale := c.DefaultQuery("locale", i18n.DefaultLocale)
	if !i18n.IsLocale(locale) {
		locale = i18n.DefaultLocale
	}
	response.Success(c, t.Tours.Search(c.Request.Context(), c.Query("q"), locale, 10))
}

// CreateTour godoc
// @Summary  Create a tour
// @Tags     admin
// @Accept   json
// @Param    body body dto.TourRequest true "tour"
// @Success  201 {object} response.Response
// @Failure  400 {object} response.ErrorResponse
// @Failure  401 {object} response.ErrorResponse
// @Router   /api/tours [post]
func (t TourController) CreateTour(c *gin.Context) {
	var req dto.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	tour, err := t.Tours.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, tour)
}

func (t TourController) UpdateTour(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	tour, err := t.Tours.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tour)
}

func (t TourController) SetTourCategories(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var body struct {
		CategoryIDs []uint `json:"categoryIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badBinding(c, err)
		return
	}
	tour, err := t.Tours.SetCategories(c.Request.Context(), id, body.CategoryIDs)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tour)
}

func (t TourController) DeleteTour(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := t.Tours.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// GetTourReviews returns approved reviews with the rating summary
func (t TourController) GetTourReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	response.Success(c, gin.H{
		"reviews": t.Reviews.Approved(ctx, id),
		"summary": t.Reviews.Summary(ctx, id),
	})
}

func (t TourController) SubmitReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	review, err := t.Reviews.Submit(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, review)
}
