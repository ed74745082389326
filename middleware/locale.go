package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbooking/constants"
	"tourbooking/i18n"
	"tourbooking/services"
)

const (
	AdminPrefix    = "/admin"
	AdminLoginPath = "/admin/login"
)

// publicPrefixes are served without a locale segment
var publicPrefixes = []string{
	"/api",
	"/ws",
	"/swagger",
	"/static",
	"/admin",
	"/health",
	"/ping",
	"/sitemap.xml",
	"/robots.txt",
	"/favicon.ico",
}

func hasPrefixSegment(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}

// IsAdminPath reports whether path is under /admin
func IsAdminPath(path string) bool {
	return hasPrefixSegment(path, AdminPrefix)
}

// IsPublicPath reports whether path skips the locale redirect
func IsPublicPath(path string) bool {
	for _, p := range publicPrefixes {
		if hasPrefixSegment(path, p) {
			return true
		}
	}
	return false
}

// LocaleRouting gates the admin area and puts every other page under a locale segment.
// It runs before routing so that unprefixed paths can be redirected.
func LocaleRouting(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if IsAdminPath(path) {
			if path == AdminLoginPath {
				c.Next()
				return
			}
			session, err := sessions.FromRequest(c.Request)
			if err != nil {
				c.Redirect(http.StatusFound, AdminLoginPath)
				c.Abort()
				return
			}
			c.Set(ContextAdmin, session)
			c.Next()
			return
		}

		if IsPublicPath(path) {
			c.Next()
			return
		}

		if locale, ok := i18n.FromPath(path); ok {
			c.Set(ContextLocale, locale)
			c.Next()
			return
		}

		locale := i18n.Resolve(c.Request)
		target := "/" + locale + path
		if path == "/" {
			target = "/" + locale
		}
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}

		SetLocaleCookie(c, locale)
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

// SetLocaleCookie remembers locale for a year
func SetLocaleCookie(c *gin.Context, locale string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     constants.LocaleCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   constants.LocaleCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
