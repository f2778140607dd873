package services

import (
	"errors"
	"strings"
	"time"

	"bike-shop/models"
	"bike-shop/utils"

	log "github.com/sirupsen/logrus"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("invalid email or password")

type AdminAccount struct {
	Email        string
	PasswordHash string
}

type AuthService struct {
	admin     AdminAccount
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(admin AdminAccount, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		admin:     admin,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.admin.Email) {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(s.admin.PasswordHash, req.Password)
	if err != nil {
		log.WithError(err).Warn("Admin password hash could not be verified")
		return nil, ErrInvalidCredentials
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(s.jwtSecret, s.admin.Email, RoleAdmin, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Email:     s.admin.Email,
		Role:      RoleAdmin,
	}, nil
}

func (s *AuthService) Validate(token string) (*utils.Claims, error) {
	return utils.ValidateToken(s.jwtSecret, token)
}
