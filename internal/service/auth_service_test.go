package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		CookieExpireDays: 30,
		BcryptCost:       bcrypt.MinCost,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newTestAuthService()

	hash, err := svc.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, svc.CheckPassword(hash, "hunter22"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	svc := newTestAuthService()

	h1, err := svc.HashPassword("same password")
	require.NoError(t, err)
	h2, err := svc.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()
	student := &model.Student{
		ID:       uuid.New(),
		Username: "alice",
		Role:     model.RoleStudent,
	}

	token, err := svc.GenerateToken(student)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, student.ID, claims.UserID)
	assert.Equal(t, student.ID.String(), claims.Subject)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService()
	other := NewAuthService(&config.Config{
		JWTSecret:  "different-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	token, err := other.GenerateToken(&model.Student{ID: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  -time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	token, err := svc.GenerateToken(&model.Student{ID: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestCookieMaxAge(t *testing.T) {
	svc := newTestAuthService()
	assert.Equal(t, 30*24*60*60, svc.CookieMaxAge())
}

func TestCookieSecureFollowsEnvironment(t *testing.T) {
	dev := NewAuthService(&config.Config{Environment: "development"})
	assert.False(t, dev.CookieSecure())

	prod := NewAuthService(&config.Config{Environment: "production"})
	assert.True(t, prod.CookieSecure())
}
