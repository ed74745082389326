package controllers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	playground "github.com/go-playground/validator/v10"

	apperrors "tourbooking/errors"
	"tourbooking/response"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// bindingMessage turns a binding error into a short client message
func bindingMessage(err error) string {
	var verrs playground.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field != "" {
			field = strings.ToLower(field[:1]) + field[1:]
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "email":
			parts = append(parts, field+" must be a valid email")
		case "isodate":
			parts = append(parts, field+" must use YYYY-MM-DD")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func badBinding(c *gin.Context, err error) {
	response.BadRequest(c, bindingMessage(err))
}

// appMessage is the client-safe message of err
func appMessage(err error) string {
	if appErr := apperrors.GetAppError(err); appErr != nil && response.StatusFor(appErr.Code) < 500 {
		return appErr.Message
	}
	return "Something went wrong"
}

// statusOf is the HTTP status response.FromError would use for err
func statusOf(err error) int {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return response.StatusFor(appErr.Code)
	}
	return http.StatusInternalServerError
}
