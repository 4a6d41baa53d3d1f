package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundRequest defines the payload for funding a budget.
type FundRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Date   *time.Time      `json:"date"` // Defaults to now when omitted
	Note   string          `json:"note"`
	Source string          `json:"source" binding:"omitempty,oneof=MANUAL IMPORT"`
}

// TransferRequest defines the payload for moving funds between two budgets.
type TransferRequest struct {
	FromBudgetID   string          `json:"fromBudgetID" binding:"required"`
	ToBudgetID     string          `json:"toBudgetID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Note           string          `json:"note"`
	IdempotencyKey *string         `json:"idempotencyKey"` // Optional retry token, unique per workspace
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID    string          `json:"entryID"`
	BudgetID   string          `json:"budgetID"`
	Amount     decimal.Decimal `json:"amount"`
	EntryDate  time.Time       `json:"entryDate"`
	Note       string          `json:"note,omitempty"`
	Source     string          `json:"source"`
	TransferID *string         `json:"transferID,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// TransferResponse defines the data returned after a successful transfer.
type TransferResponse struct {
	TransferID   string          `json:"transferID"`
	FromBudgetID string          `json:"fromBudgetID"`
	ToBudgetID   string          `json:"toBudgetID"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListEntriesParams holds query parameters for listing ledger entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a paginated entry listing.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:    e.EntryID,
		BudgetID:   e.BudgetID,
		Amount:     e.Amount,
		EntryDate:  e.EntryDate,
		Note:       e.Note,
		Source:     string(e.Source),
		TransferID: e.TransferID,
		CreatedAt:  e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}

// ToTransferResponse converts a domain.Transfer to its response DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:   t.TransferID,
		FromBudgetID: t.FromBudgetID,
		ToBudgetID:   t.ToBudgetID,
		Amount:       t.Amount,
		CreatedAt:    t.CreatedAt,
	}
}
