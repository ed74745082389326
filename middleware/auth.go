package middleware

import (
	"github.com/gin-gonic/gin"

	"tourbooking/response"
	"tourbooking/services"
)

// RequireAdmin rejects API calls without a valid admin session cookie
func RequireAdmin(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := sessions.FromRequest(c.Request)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextAdmin, session)
		c.Next()
	}
}

// bearer returns the Authorization bearer token, or the token query parameter
// that browsers must use for websocket upgrades
func bearer(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return h
	}
	return c.Query("token")
}

// OptionalUser attaches the signed-in user when a valid token is present and never rejects
func OptionalUser(tokens *services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearer(c); raw != "" && tokens.Enabled() {
			if claims, err := tokens.Verify(raw); err == nil {
				c.Set(ContextUser, claims)
			}
		}
		c.Next()
	}
}

// RequireUser rejects requests without a valid user token
func RequireUser(tokens *services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(bearer(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextUser, claims)
		c.Next()
	}
}
