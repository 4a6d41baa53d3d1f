package services

import (
	"context"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// VerifyCredentials checks email/password and returns the user on success.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// AuthSvcFacade issues bearer tokens for verified users.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
