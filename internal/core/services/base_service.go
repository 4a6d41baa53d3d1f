package services

import (
	"context"
	"log/slog"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	WorkspaceAuthorizer portssvc.WorkspaceAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a workspace
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workspaceID string, requiredRole domain.UserWorkspaceRole) error {
	if s.WorkspaceAuthorizer != nil {
		return s.WorkspaceAuthorizer.AuthorizeUserAction(ctx, userID, workspaceID, requiredRole)
	}
	// No authorizer wired; only the workspace service itself runs like this.
	s.LogDebug(ctx, "No workspace authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("workspace_id", workspaceID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
