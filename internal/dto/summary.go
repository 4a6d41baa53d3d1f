package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams holds the raw query bounds for a summary request. Bounds are
// kept as strings so the core can own the parse-or-ErrInvalidRange decision.
type SummaryParams struct {
	From *string `form:"from"`
	To   *string `form:"to"`
}

// BudgetSummaryResponse defines the data returned for a budget summary.
type BudgetSummaryResponse struct {
	BudgetID          string          `json:"budgetID"`
	Name              string          `json:"name"`
	Target            decimal.Decimal `json:"target"`
	Funded            decimal.Decimal `json:"funded"`
	Spent             decimal.Decimal `json:"spent"`
	RemainingClassic  decimal.Decimal `json:"remainingClassic"`
	EnvelopeRemaining decimal.Decimal `json:"envelopeRemaining"`
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
}

// WorkspaceSummaryResponse defines the per-workspace rollup.
type WorkspaceSummaryResponse struct {
	WorkspaceID string                  `json:"workspaceID"`
	Budgets     []BudgetSummaryResponse `json:"budgets"`
	TotalFunded decimal.Decimal         `json:"totalFunded"`
	TotalSpent  decimal.Decimal         `json:"totalSpent"`
	From        time.Time               `json:"from"`
	To          time.Time               `json:"to"`
}

// ToBudgetSummaryResponse converts a domain.BudgetSummary to its DTO.
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		BudgetID:          s.BudgetID,
		Name:              s.Name,
		Target:            s.Target,
		Funded:            s.Funded,
		Spent:             s.Spent,
		RemainingClassic:  s.RemainingClassic,
		EnvelopeRemaining: s.EnvelopeRemaining,
		From:              s.From,
		To:                s.To,
	}
}

// ToWorkspaceSummaryResponse converts a domain.WorkspaceSummary to its DTO.
func ToWorkspaceSummaryResponse(s *domain.WorkspaceSummary) WorkspaceSummaryResponse {
	budgets := make([]BudgetSummaryResponse, len(s.Budgets))
	for i := range s.Budgets {
		budgets[i] = ToBudgetSummaryResponse(&s.Budgets[i])
	}
	return WorkspaceSummaryResponse{
		WorkspaceID: s.WorkspaceID,
		Budgets:     budgets,
		TotalFunded: s.TotalFunded,
		TotalSpent:  s.TotalSpent,
		From:        s.From,
		To:          s.To,
	}
}
