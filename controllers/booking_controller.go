package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/middleware"
	"tourbooking/response"
	"tourbooking/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) BookingController {
	return BookingController{Bookings: bookings}
}

// CreateBooking godoc
// @Summary  Book a published tour as a guest or signed-in user
// @Tags     bookings
// @Accept   json
// @Param    body body dto.CreateBookingRequest true "booking"
// @Success  201 {object} response.Response
// @Failure  400 {object} response.ErrorResponse
// @Failure  404 {object} response.ErrorResponse
// @Router   /api/bookings [post]
func (b BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	if req.Locale == "" {
		req.Locale = middleware.Locale(c)
	}

	userID := ""
	if u := middleware.User(c); u != nil {
		userID = u.Subject
	}

	booking, err := b.Bookings.Create(c.Request.Context(), req, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

// LookupBooking godoc
// @Summary  Find a booking by reference code and contact email
// @Tags     bookings
// @Param    ref   query string true "reference code"
// @Param    email query string true "contact email"
// @Success  200 {object} response.Response
// @Failure  404 {object} response.ErrorResponse
// @Router   /api/bookings/lookup [get]
func (b BookingController) LookupBooking(c *gin.Context) {
	var q dto.BookingLookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}
	booking, err := b.Bookings.Lookup(c.Request.Context(), q.Reference, q.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// GetMyBookings lists the signed-in user's bookings
func (b BookingController) GetMyBookings(c *gin.Context) {
	user := middleware.User(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	bookings, err := b.Bookings.ListForUser(c.Request.Context(), user.Subject)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (b BookingController) GetBookings(c *gin.Context) {
	var q dto.BookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}
	bookings, total, err := b.Bookings.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithPagination(c, bookings, q.Page, q.Limit, int(total))
}

func (b BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := b.Bookings.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// UpdateBooking godoc
// @Summary  Change a booking's status or admin note
// @Tags     admin
// @Accept   json
// @Param    id   path int                      true "booking id"
// @Param    body body dto.UpdateBookingRequest true "changes"
// @Success  200 {object} response.Response
// @Failure  400 {object} response.ErrorResponse
// @Router   /api/bookings/{id} [put]
func (b BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	booking, err := b.Bookings.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

func (b BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := b.Bookings.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// ExportBookings downloads the filtered bookings as an xlsx workbook
func (b BookingController) ExportBookings(c *gin.Context) {
	var q dto.BookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badBinding(c, err)
		return
	}
	var buf bytes.Buffer
	if err := b.Bookings.ExportBookings(c.Request.Context(), q, &buf); err != nil {
		response.FromError(c, err)
		return
	}
	name := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
