package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
	"github.com/flsuite/freelance_ledger_app/internal/platform/config"
	"github.com/flsuite/freelance_ledger_app/internal/utils"
)

// ownerSubject is the fixed JWT subject; this deployment is single-tenant and
// user management lives outside the service.
const ownerSubject = "owner"

type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := s.GetLogger(ctx)

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(s.cfg.APIKey)) != 1 {
		logger.Warn("Login attempt with invalid API key")
		return nil, apperrors.NewAppError(401, "invalid API key", apperrors.ErrValidation)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(ownerSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
