package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
	"github.com/KayaDyLux/ExpenseManager/internal/middleware"
	"github.com/KayaDyLux/ExpenseManager/internal/platform/config"
	"github.com/KayaDyLux/ExpenseManager/internal/utils"
)

// authService issues bearer tokens for verified users.
type authService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:     cfg,
		userSvc: userSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed JWT on success.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
