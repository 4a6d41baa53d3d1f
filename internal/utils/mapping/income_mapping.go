package mapping

import (
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
)

// ToModelIncome converts a domain Income to a model Income
func ToModelIncome(d domain.Income) models.Income {
	return models.Income{
		IncomeID:     d.IncomeID,
		WorkspaceID:  d.WorkspaceID,
		Source:       d.Source,
		Amount:       d.Amount,
		ReceivedDate: d.ReceivedDate,
		Note:         d.Note,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:     m.IncomeID,
		WorkspaceID:  m.WorkspaceID,
		Source:       m.Source,
		Amount:       m.Amount,
		ReceivedDate: m.ReceivedDate,
		Note:         m.Note,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts a slice of model Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	ds := make([]domain.Income, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}
