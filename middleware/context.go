package middleware

import (
	"github.com/gin-gonic/gin"

	"tourbooking/i18n"
	"tourbooking/services"
)

// Gin context keys
const (
	ContextRequestID = "requestId"
	ContextLocale    = "locale"
	ContextAdmin     = "admin"
	ContextUser      = "user"
)

// Locale returns the request's locale, or the default when none was resolved
func Locale(c *gin.Context) string {
	if v, ok := c.Get(ContextLocale); ok {
		if l, ok := v.(string); ok && i18n.IsLocale(l) {
			return l
		}
	}
	return i18n.DefaultLocale
}

func Admin(c *gin.Context) *services.AdminSession {
	if v, ok := c.Get(ContextAdmin); ok {
		if s, ok := v.(*services.AdminSession); ok {
			return s
		}
	}
	return nil
}

func User(c *gin.Context) *services.UserClaims {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*services.UserClaims); ok {
			return u
		}
	}
	return nil
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
