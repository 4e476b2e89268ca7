package auth

import (
	"testing"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/config"
	apperrors "github.com/prekshaaaaaaaa/coliving-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.AdminConfig {
	return &config.AdminConfig{
		Secret:         "super-admin-secret",
		TokenSecret:    "0123456789abcdef0123456789abcdef",
		TokenExpiryMin: 5,
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	uc := NewAdminAuthUseCase(testConfig())

	token, err := uc.IssueToken("super-admin-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, uc.VerifyToken(token))
}

func TestIssueToken_WrongSecret(t *testing.T) {
	t.Parallel()

	uc := NewAdminAuthUseCase(testConfig())

	_, err := uc.IssueToken("guess")
	assert.ErrorIs(t, err, apperrors.ErrAdminSecretMismatch)
	assert.Equal(t, 401, apperrors.StatusOf(err))
}

func TestVerifyToken_WrongSigningKey(t *testing.T) {
	t.Parallel()

	issuer := NewAdminAuthUseCase(&config.AdminConfig{
		Secret:         "super-admin-secret",
		TokenSecret:    "another-signing-key-another-signing",
		TokenExpiryMin: 5,
	})
	verifier := NewAdminAuthUseCase(testConfig())

	token, err := issuer.IssueToken("super-admin-secret")
	require.NoError(t, err)

	assert.ErrorIs(t, verifier.VerifyToken(token), apperrors.ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Parallel()

	uc := NewAdminAuthUseCase(testConfig())
	assert.ErrorIs(t, uc.VerifyToken("not.a.token"), apperrors.ErrInvalidToken)
}

func TestDisabledWithoutSecrets(t *testing.T) {
	t.Parallel()

	uc := NewAdminAuthUseCase(&config.AdminConfig{})
	assert.False(t, uc.Enabled())

	_, err := uc.IssueToken("anything")
	assert.Equal(t, 401, apperrors.StatusOf(err))
	assert.Equal(t, 401, apperrors.StatusOf(uc.VerifyToken("anything")))
}

func TestExpiryFallback(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.TokenExpiryMin = 0
	uc := NewAdminAuthUseCase(cfg)

	token, err := uc.IssueToken("super-admin-secret")
	require.NoError(t, err)
	assert.NoError(t, uc.VerifyToken(token))
}
