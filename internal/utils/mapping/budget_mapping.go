package mapping

import (
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		Target:      d.Target,
		Period:      string(d.Period),
		Color:       d.Color,
		IsActive:    d.IsActive,
		ArchivedAt:  d.ArchivedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		Target:      m.Target,
		Period:      domain.BudgetPeriod(m.Period),
		Color:       m.Color,
		IsActive:    m.IsActive,
		ArchivedAt:  m.ArchivedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
