package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

// AuthConfig carries the token signing parameters.
type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	Issuer    string
}

// UserClaims is the payload of issued bearer tokens.
type UserClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles admin login and token issuing.
type AuthService struct {
	userRepo repository.UserRepository
	cfg      AuthConfig
}

func NewAuthService(userRepo repository.UserRepository, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 8 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "mdf-gestor"
	}
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// EnsureAdmin seeds the configured admin account on startup when it does not
// exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return mapStoreError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return s.userRepo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

// Login verifies the credentials and returns a signed token plus its
// lifetime in seconds.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, fmt.Errorf("%w: invalid credentials", ErrValidation)
		}
		return "", 0, mapStoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", 0, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	now := time.Now()
	claims := &UserClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return token, int64(s.cfg.TokenTTL.Seconds()), nil
}

// ParseToken validates a bearer token and returns its claims.
func (s *AuthService) ParseToken(tokenStr string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
