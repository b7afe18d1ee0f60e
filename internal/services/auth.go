package services

import (
	"context"
	"errors"
	"time"

	"github.com/ikyawthetpaing/webacademy/internal/config"
	"github.com/ikyawthetpaing/webacademy/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a wrong admin password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues admin tokens for the single operator credential.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	log := logger.WithCtx(ctx)

	if s.cfg.AdminPasswordHash == "" || s.cfg.JWTSecret == "" {
		log.Warn("admin login attempted without configured credentials")
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		log.Warn("admin login rejected")
		return "", ErrInvalidCredentials
	}

	ttl, err := time.ParseDuration(s.cfg.AccessTokenTTL)
	if err != nil {
		ttl = time.Hour
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	log.Info("admin login succeeded")
	return signed, nil
}
