package services

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"tourbooking/constants"
	"tourbooking/errors"
)

// AdminSession is the payload sealed into the admin cookie
type AdminSession struct {
	AdminID  uint      `json:"adminId"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issuedAt"`
}

// SessionManager seals and opens admin session cookies
type SessionManager struct {
	codec  *securecookie.SecureCookie
	secure bool
	maxAge time.Duration
}

// NewSessionManager signs with secret and encrypts with a key derived from it
func NewSessionManager(secret string, secure bool) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 characters")
	}
	blockKey := sha256.Sum256([]byte(secret))
	codec := securecookie.New([]byte(secret), blockKey[:])
	codec.MaxAge(int(constants.SessionMaxAge.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &SessionManager{
		codec:  codec,
		secure: secure,
		maxAge: constants.SessionMaxAge,
	}, nil
}

// Seal encodes s for the cookie value
func (m *SessionManager) Seal(s AdminSession) (string, error) {
	return m.codec.Encode(constants.SessionCookieName, s)
}

// Open decodes a cookie value; any tampering, expiry or missing admin id is an error
func (m *SessionManager) Open(value string) (*AdminSession, error) {
	var s AdminSession
	if err := m.codec.Decode(constants.SessionCookieName, value, &s); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session", err)
	}
	if s.AdminID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session", nil)
	}
	return &s, nil
}

// FromRequest opens the session cookie carried by r
func (m *SessionManager) FromRequest(r *http.Request) (*AdminSession, error) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Missing session", err)
	}
	return m.Open(cookie.Value)
}

// Write sets the sealed session cookie on w
func (m *SessionManager) Write(w http.ResponseWriter, s AdminSession) error {
	value, err := m.Seal(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
