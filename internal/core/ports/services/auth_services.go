package services

import (
	"context"

	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

// AuthSvc exchanges the configured API key for a short-lived JWT.
// User management lives outside this service; the token subject is fixed.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
