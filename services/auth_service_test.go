package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbooking/errors"
	"tourbooking/models"
	"tourbooking/testutil"
)

func newAuthService(t *testing.T, delay time.Duration) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err := db.Create(&models.Admin{Email: "admin@example.com", PasswordHash: string(hash)}).Error; err != nil {
		t.Fatal(err)
	}
	svc := NewAuthService(AuthServiceOptions{
		DB:           db,
		Limiter:      NewMemoryRateLimiter(3, time.Minute),
		FailureDelay: delay,
	})
	return svc, db
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t, time.Millisecond)
	admin, err := svc.Login(context.Background(), " Admin@Example.com ", "correct horse", "10.0.0.1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("admin = %+v", admin)
	}
}

func TestLoginFailureIsDelayedAndGeneric(t *testing.T) {
	svc, _ := newAuthService(t, 100*time.Millisecond)

	start := time.Now()
	_, errWrongPassword := svc.Login(context.Background(), "admin@example.com", "nope", "10.0.0.1")
	if time.Since(start) < 100*time.Millisecond {
		t.Error("failure returned before the delay")
	}
	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "nope", "10.0.0.2")

	for _, err := range []error{errWrongPassword, errUnknown} {
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidCredentials || appErr.Message != invalidCredentialsMessage {
			t.Errorf("err = %v", err)
		}
	}
}

func TestLoginRateLimited(t *testing.T) {
	svc, _ := newAuthService(t, time.Millisecond)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.Login(ctx, "admin@example.com", "wrong", "10.0.0.1")
	}
	_, err := svc.Login(ctx, "admin@example.com", "correct horse", "10.0.0.1")
	if !errors.HasCode(err, errors.ErrCodeTooManyAttempts) {
		t.Fatalf("err = %v, want too many attempts", err)
	}
	if _, err := svc.Login(ctx, "admin@example.com", "correct horse", "10.0.0.9"); err != nil {
		t.Fatalf("other client blocked: %v", err)
	}
}
