package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tourbooking/errors"
)

// UserClaims are the claims of a hosted-auth access token
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier checks hosted-auth access tokens signed with the project's JWT secret
type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(secret, authURL string) *TokenVerifier {
	issuer := ""
	if authURL != "" {
		issuer = strings.TrimRight(authURL, "/") + "/auth/v1"
	}
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}
}

// Enabled reports whether a secret is configured
func (v *TokenVerifier) Enabled() bool {
	return v != nil && len(v.secret) > 0
}

// Verify returns the claims of a valid token. The subject is the user id.
func (v *TokenVerifier) Verify(tokenString string) (*UserClaims, error) {
	if !v.Enabled() {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "User auth is not configured", nil)
	}
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "Missing token", nil)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	if claims.Subject == "" {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no subject", nil)
	}
	return claims, nil
}

// Issue signs a token for userID. Used by tests and local tooling in place of the hosted provider.
func (v *TokenVerifier) Issue(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
