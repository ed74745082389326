package controllers

import (
	"github.com/gin-gonic/gin"

	"tourbooking/dto"
	"tourbooking/i18n"
	"tourbooking/response"
	"tourbooking/services"
)

type TranslateController struct {
	Translator *services.Translator
}

func NewTranslateController(translator *services.Translator) TranslateController {
	return TranslateController{Translator: translator}
}

// Translate godoc
// @Summary  Translate text; the source text is returned when translation is unavailable
// @Tags     admin
// @Accept   json
// @Param    body body dto.TranslateRequest true "text"
// @Success  200 {object} response.Response
// @Router   /api/translate [post]
func (t TranslateController) Translate(c *gin.Context) {
	var req dto.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBinding(c, err)
		return
	}
	if req.Source == "" {
		req.Source = i18n.DefaultLocale
	}
	out := t.Translator.TranslateText(c.Request.Context(), req.Text, req.Source, req.Target)
	response.Success(c, dto.TranslateResponse{Translated: out})
}
