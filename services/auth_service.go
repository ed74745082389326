package services

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbooking/constants"
	"tourbooking/errors"
	"tourbooking/models"
	"tourbooking/services/logger"
)

const invalidCredentialsMessage = "Invalid email or password"

// compared when the email is unknown so both failure paths cost one bcrypt check
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	db           *gorm.DB
	limiter      RateLimiter
	logger       logger.Logger
	failureDelay time.Duration
}

type AuthServiceOptions struct {
	DB           *gorm.DB
	Limiter      RateLimiter
	Logger       logger.Logger
	FailureDelay time.Duration
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	if opts.Limiter == nil {
		opts.Limiter = NewMemoryRateLimiter(constants.LoginMaxAttempts, constants.LoginAttemptWindow)
	}
	if opts.FailureDelay == 0 {
		opts.FailureDelay = constants.LoginFailureDelay
	}
	return &AuthService{
		db:           opts.DB,
		limiter:      opts.Limiter,
		logger:       opts.Logger,
		failureDelay: opts.FailureDelay,
	}
}

// Login checks admin credentials. clientKey (the client IP) is rate limited;
// every failure is delayed before it is reported.
func (s *AuthService) Login(ctx context.Context, email, password, clientKey string) (*models.Admin, error) {
	blocked, err := s.limiter.Blocked(ctx, clientKey)
	if err != nil {
		s.logger.Warn("rate limiter unavailable: %v", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrCodeTooManyAttempts, "Too many login attempts, try again later", nil)
	}

	admin, err := s.verify(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		if ferr := s.limiter.Fail(ctx, clientKey); ferr != nil {
			s.logger.Warn("record login failure: %v", ferr)
		}
		s.logger.Info("failed admin login from %s", clientKey)
		s.wait(ctx)
		return nil, err
	}

	if err := s.limiter.Reset(ctx, clientKey); err != nil {
		s.logger.Warn("reset login attempts: %v", err)
	}
	s.logger.Info("admin %d signed in", admin.ID)
	return admin, nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Internal("Failed to load admin", err)
		}
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, invalidCredentialsMessage, nil)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidCredentials, invalidCredentialsMessage, nil)
	}
	return &admin, nil
}

func (s *AuthService) wait(ctx context.Context) {
	t := time.NewTimer(s.failureDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *AuthService) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Unauthorized", nil)
		}
		return nil, errors.Internal("Failed to load admin", err)
	}
	return &admin, nil
}

// HashPassword is used by the admin bootstrap and tests
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
