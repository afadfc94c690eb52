package service

import (
	"context"
	"strings"
	"time"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	adminEmail        string
	adminPasswordHash []byte
	tokens            security.TokenManager
}

// NewAuthService authenticates the single back-office operator configured for the site.
func NewAuthService(adminEmail, adminPasswordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		adminEmail:        strings.TrimSpace(adminEmail),
		adminPasswordHash: []byte(adminPasswordHash),
		tokens:            tokens,
	}
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, time.Time, error) {
	if s.adminEmail == "" || !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		logger.Warn("Admin login rejected", "email", email, "reason", "unknown email")
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		logger.Warn("Admin login rejected", "email", email, "reason", "password mismatch")
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateAdminToken(s.adminEmail)
	if err != nil {
		return "", time.Time{}, err
	}
	logger.Info("Admin logged in", "email", s.adminEmail)
	return token, expiresAt, nil
}
