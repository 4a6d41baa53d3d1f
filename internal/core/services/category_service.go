package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
)

// categoryService manages the category directory. A category may carry a
// default budget hint consumed by the expense flow.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	budgetRepo   portsrepo.BudgetRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, budgetRepo portsrepo.BudgetRepositoryFacade, authorizer portssvc.WorkspaceAuthorizerSvc) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  BaseService{WorkspaceAuthorizer: authorizer},
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// validateDefaultBudget ensures a default budget hint points at an active
// budget inside the workspace.
func (s *categoryService) validateDefaultBudget(ctx context.Context, workspaceID, budgetID string) error {
	_, err := s.budgetRepo.FindActiveBudget(ctx, workspaceID, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: default budget %s not active in workspace", apperrors.ErrValidation, budgetID)
		}
		return fmt.Errorf("failed to validate default budget: %w", err)
	}
	return nil
}

// CreateCategory creates a new active category.
func (s *categoryService) CreateCategory(ctx context.Context, workspaceID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.DefaultBudgetID != nil {
		if err := s.validateDefaultBudget(ctx, workspaceID, *req.DefaultBudgetID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:      uuid.NewString(),
		WorkspaceID:     workspaceID,
		Name:            req.Name,
		DefaultBudgetID: req.DefaultBudgetID,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a category within the workspace.
func (s *categoryService) GetCategoryByID(ctx context.Context, workspaceID, categoryID, requestingUserID string) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.categoryRepo.FindCategoryByID(ctx, workspaceID, categoryID)
}

// ListCategories lists categories in a workspace.
func (s *categoryService) ListCategories(ctx context.Context, workspaceID string, includeArchived bool, requestingUserID string) ([]domain.Category, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListCategories(ctx, workspaceID, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory patches name and default budget hint.
func (s *categoryService) UpdateCategory(ctx context.Context, workspaceID, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, categoryID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		category.Name = *req.Name
		updated = true
	}
	if req.DefaultBudgetID != nil {
		if *req.DefaultBudgetID != "" {
			if err := s.validateDefaultBudget(ctx, workspaceID, *req.DefaultBudgetID); err != nil {
				return nil, err
			}
			category.DefaultBudgetID = req.DefaultBudgetID
		} else {
			// Empty string clears the hint.
			category.DefaultBudgetID = nil
		}
		updated = true
	}

	if !updated {
		return category, nil
	}

	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to save category update", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to save category update: %w", err)
	}
	return category, nil
}

// ArchiveCategory soft-deletes a category. Existing expenses keep their
// category reference.
func (s *categoryService) ArchiveCategory(ctx context.Context, workspaceID, categoryID, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, workspaceID, domain.RoleMember); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, workspaceID, categoryID)
	if err != nil {
		return err
	}
	if !category.IsActive {
		return fmt.Errorf("%w: category already archived", apperrors.ErrConflict)
	}

	category.IsActive = false
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to archive category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to archive category: %w", err)
	}

	s.LogInfo(ctx, "Category archived", slog.String("category_id", categoryID))
	return nil
}
