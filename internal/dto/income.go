package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the payload for recording an income.
type CreateIncomeRequest struct {
	Source string          `json:"source" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Date   *time.Time      `json:"date"` // Defaults to now when omitted
	Note   string          `json:"note"`
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID     string          `json:"incomeID"`
	Source       string          `json:"source"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDate time.Time       `json:"receivedDate"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListIncomesParams holds query parameters for listing incomes.
type ListIncomesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListIncomesResponse wraps a paginated income listing.
type ListIncomesResponse struct {
	Incomes   []IncomeResponse `json:"incomes"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToIncomeResponse converts a domain.Income to its response DTO.
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:     in.IncomeID,
		Source:       in.Source,
		Amount:       in.Amount,
		ReceivedDate: in.ReceivedDate,
		Note:         in.Note,
		CreatedAt:    in.CreatedAt,
	}
}

// ToIncomeResponses converts a slice of domain incomes.
func ToIncomeResponses(incomes []domain.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		responses[i] = ToIncomeResponse(&incomes[i])
	}
	return responses
}
