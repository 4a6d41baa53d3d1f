package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording an expense.
// BudgetID may be omitted; when a category with a default budget is given,
// the core resolves the hint.
type CreateExpenseRequest struct {
	BudgetID    *string         `json:"budgetID"`
	CategoryID  *string         `json:"categoryID"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Date        *time.Time      `json:"date"` // Defaults to now when omitted
	Description string          `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	BudgetID    *string         `json:"budgetID,omitempty"`
	CategoryID  *string         `json:"categoryID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesParams holds query parameters for listing expenses.
type ListExpensesParams struct {
	BudgetID  *string `form:"budgetID"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListExpensesResponse wraps a paginated expense listing.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		BudgetID:    e.BudgetID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
