package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	return NewAuthService(repository.NewUserRepository(db), AuthConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3nha"))
	// seeding twice is a no-op
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3nha"))

	token, expiresIn, err := svc.Login(ctx, "admin", "s3nha")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3nha"))

	_, _, err := svc.Login(ctx, "admin", "errada")
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Login(ctx, "ninguem", "s3nha")
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	svc := newAuthService(t)
	other := NewAuthService(nil, AuthConfig{SecretKey: "other-secret", TokenTTL: time.Hour})
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3nha"))
	token, _, err := svc.Login(ctx, "admin", "s3nha")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}
