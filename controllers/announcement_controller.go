package controllers

import (
	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/i18n"
	"tourbooking/response"
	"tourbooking/services"
)

type AnnouncementController struct {
	Announcements *services.AnnouncementService
}

func NewAnnouncementController(announcements *services.AnnouncementService) AnnouncementController {
	return AnnouncementController{Announcements: announcements}
}

// GetActiveAnnouncements godoc
// @Summary  Active banner and popup for a locale
// @Tags     announcements
// @Param    locale query string false "en, th or zh"
// @Success  200 {object} response.Response
// @Router   /api/announcements/active [get]
func (a AnnouncementController) GetActiveAnnouncements(c *gin.Context) {
	locale := c.Query("locale")
	if !i18n.IsLocale(locale) {
		locale = i18n.Resolve(c.Request)
	}
	response.Success(c, a.Announcements.ActiveFor(c.Request.Context(), locale))
}

func (a AnnouncementController) GetAnnouncements(c *gin.Context) {
	list, err := a.Announcements.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, list)
}

func (a AnnouncementController) GetAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := a.Announcements.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

// CreateAnnouncement godoc
// @Summary  Create an announcement, activating it when isActive is set
// @Tags     admin
// @Accept   json
// @Param    body body dto.AnnouncementRequest true "announcement"
// @Success  201 {object} response.Response
// @Failure  400 {object} response.ErrorResponse
// @Failure  409 {object} response.ErrorResponse
// @Router   /api/announcements [post]
func (a AnnouncementController) CreateAnnouncement(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	item, err := a.Announcements.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, item)
}

func (a AnnouncementController) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	item, err := a.Announcements.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

func (a AnnouncementController) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.Announcements.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// ActivateAnnouncement godoc
// @Summary  Activate an announcement, deactivating any other of the same type
// @Tags     admin
// @Param    id path int true "announcement id"
// @Success  200 {object} response.Response
// @Failure  404 {object} response.ErrorResponse
// @Failure  409 {object} response.ErrorResponse
// @Router   /api/announcements/{id}/activate [post]
func (a AnnouncementController) ActivateAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := a.Announcements.Activate(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}

func (a AnnouncementController) DeactivateAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := a.Announcements.Deactivate(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, item)
}
