package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbooking/response"
	"tourbooking/services"
)

const (
	maxUploadSize = 10 << 20
	uploadFolder  = "tours"
)

type UploadController struct {
	Uploader services.ImageUploader
}

func NewUploadController(uploader services.ImageUploader) UploadController {
	return UploadController{Uploader: uploader}
}

// UploadImage godoc
// @Summary  Upload an image to the CDN
// @Tags     admin
// @Accept   multipart/form-data
// @Param    file formData file true "image"
// @Success  201 {object} response.Response
// @Failure  503 {object} response.ErrorResponse
// @Router   /api/upload [post]
func (u UploadController) UploadImage(c *gin.Context) {
	if u.Uploader == nil {
		response.Error(c, http.StatusServiceUnavailable, "Image upload is not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		response.BadRequest(c, "file must be an image")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read file")
		return
	}
	defer file.Close()

	url, err := u.Uploader.Upload(c.Request.Context(), file, uploadFolder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}
