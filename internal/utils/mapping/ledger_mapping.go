package mapping

import (
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:     d.EntryID,
		WorkspaceID: d.WorkspaceID,
		BudgetID:    d.BudgetID,
		Amount:      d.Amount,
		EntryDate:   d.EntryDate,
		Note:        d.Note,
		Source:      string(d.Source),
		TransferID:  d.TransferID,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     m.EntryID,
		WorkspaceID: m.WorkspaceID,
		BudgetID:    m.BudgetID,
		Amount:      m.Amount,
		EntryDate:   m.EntryDate,
		Note:        m.Note,
		Source:      domain.EntrySource(m.Source),
		TransferID:  m.TransferID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		TransferID:     d.TransferID,
		WorkspaceID:    d.WorkspaceID,
		FromBudgetID:   d.FromBudgetID,
		ToBudgetID:     d.ToBudgetID,
		Amount:         d.Amount,
		Note:           d.Note,
		IdempotencyKey: d.IdempotencyKey,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) domain.Transfer {
	return domain.Transfer{
		TransferID:     m.TransferID,
		WorkspaceID:    m.WorkspaceID,
		FromBudgetID:   m.FromBudgetID,
		ToBudgetID:     m.ToBudgetID,
		Amount:         m.Amount,
		Note:           m.Note,
		IdempotencyKey: m.IdempotencyKey,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}
