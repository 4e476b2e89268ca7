// Package auth issues and verifies the short-lived tokens that gate the
// admin/debug surface.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/config"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
)

type AdminAuthUseCase struct {
	secret      string
	tokenSecret string
	expiry      time.Duration
}

func NewAdminAuthUseCase(cfg *config.AdminConfig) *AdminAuthUseCase {
	expiry := time.Duration(cfg.TokenExpiryMin) * time.Minute
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &AdminAuthUseCase{
		secret:      cfg.Secret,
		tokenSecret: cfg.TokenSecret,
		expiry:      expiry,
	}
}

// Enabled reports whether admin access is configured at all. With no secret
// set, the whole admin surface stays locked.
func (uc *AdminAuthUseCase) Enabled() bool {
	return uc.secret != "" && uc.tokenSecret != ""
}

// IssueToken exchanges the shared admin secret for a signed HS256 token.
func (uc *AdminAuthUseCase) IssueToken(providedSecret string) (string, error) {
	if !uc.Enabled() {
		return "", apperrors.Unauthorized("admin access is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(providedSecret), []byte(uc.secret)) != 1 {
		return "", apperrors.ErrAdminSecretMismatch
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(uc.expiry).Unix(),
	})

	signed, err := token.SignedString([]byte(uc.tokenSecret))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeInternal, "failed to sign admin token", err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and the admin role claim.
func (uc *AdminAuthUseCase) VerifyToken(tokenString string) error {
	if !uc.Enabled() {
		return apperrors.Unauthorized("admin access is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.tokenSecret), nil
	})
	if err != nil || !token.Valid {
		return apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return apperrors.ErrInvalidToken
	}
	return nil
}
