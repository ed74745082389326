package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tourbooking/constants"
)

func newTestSessions(t *testing.T) *SessionManager {
	t.Helper()
	m, err := NewSessionManager(strings.Repeat("k", 32), false)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return m
}

func TestSessionRoundTrip(t *testing.T) {
	m := newTestSessions(t)
	rec := httptest.NewRecorder()
	if err := m.Write(rec, AdminSession{AdminID: 7, Email: "a@example.com", IssuedAt: time.Now()}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	s, err := m.FromRequest(req)
	if err != nil {
		t.Fatalf("FromRequest: %v", err)
	}
	if s.AdminID != 7 || s.Email != "a@example.com" {
		t.Errorf("session = %+v", s)
	}
}

func TestSessionRejectsTampering(t *testing.T) {
	m := newTestSessions(t)
	value, err := m.Seal(AdminSession{AdminID: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Open(value + "x"); err == nil {
		t.Error("tampered cookie accepted")
	}

	other, _ := NewSessionManager(strings.Repeat("z", 40), false)
	if _, err := other.Open(value); err == nil {
		t.Error("cookie sealed with another secret accepted")
	}
}

func TestSessionRequiresAdminID(t *testing.T) {
	m := newTestSessions(t)
	value, _ := m.Seal(AdminSession{Email: "nobody@example.com"})
	if _, err := m.Open(value); err == nil {
		t.Error("session without admin id accepted")
	}
}

func TestSessionMissingCookie(t *testing.T) {
	m := newTestSessions(t)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "other", Value: "x"})
	if _, err := m.FromRequest(req); err == nil {
		t.Error("expected error without session cookie")
	}
}

func TestShortSecretRejected(t *testing.T) {
	if _, err := NewSessionManager("short", false); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	m := newTestSessions(t)
	rec := httptest.NewRecorder()
	m.Clear(rec)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != constants.SessionCookieName || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v", cookies)
	}
}

func TestTokenVerifier(t *testing.T) {
	v := NewTokenVerifier("jwt-secret", "https://auth.example.com/")
	token, err := v.Issue("user-1", "u@example.com", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := v.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "u@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	expired, _ := v.Issue("user-1", "", -time.Minute)
	if _, err := v.Verify(expired); err == nil {
		t.Error("expired token accepted")
	}

	other := NewTokenVerifier("another-secret", "https://auth.example.com")
	if _, err := other.Verify(token); err == nil {
		t.Error("token with wrong signature accepted")
	}

	var disabled *TokenVerifier
	if _, err := disabled.Verify(token); err == nil {
		t.Error("nil verifier accepted a token")
	}
}
