package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for creating a budget.
type CreateBudgetRequest struct {
	Name   string          `json:"name" binding:"required"`
	Target decimal.Decimal `json:"target" binding:"required"`
	Period string          `json:"period" binding:"required,oneof=MONTHLY QUARTERLY ANNUAL"`
	Color  string          `json:"color"`
}

// UpdateBudgetRequest defines the payload for patching a budget. Nil fields
// are left untouched.
type UpdateBudgetRequest struct {
	Name   *string          `json:"name"`
	Target *decimal.Decimal `json:"target"`
	Period *string          `json:"period" binding:"omitempty,oneof=MONTHLY QUARTERLY ANNUAL"`
	Color  *string          `json:"color"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	WorkspaceID string          `json:"workspaceID"`
	Name        string          `json:"name"`
	Target      decimal.Decimal `json:"target"`
	Period      string          `json:"period"`
	Color       string          `json:"color"`
	IsActive    bool            `json:"isActive"`
	ArchivedAt  *time.Time      `json:"archivedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListBudgetsResponse wraps a budget listing.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		WorkspaceID: b.WorkspaceID,
		Name:        b.Name,
		Target:      b.Target,
		Period:      string(b.Period),
		Color:       b.Color,
		IsActive:    b.IsActive,
		ArchivedAt:  b.ArchivedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.LastUpdatedAt,
	}
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = ToBudgetResponse(&budgets[i])
	}
	return responses
}
