package pgsql

import (
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	workspaceRepo := newPgxWorkspaceRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	incomeRepo := newPgxIncomeRepository(dbPool)
	summaryRepo := newSummaryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WorkspaceRepo: workspaceRepo,
		BudgetRepo:    budgetRepo,
		LedgerRepo:    ledgerRepo,
		ExpenseRepo:   expenseRepo,
		CategoryRepo:  categoryRepo,
		IncomeRepo:    incomeRepo,
		SummaryRepo:   summaryRepo,
		UserRepo:      userRepo,
	}
}
