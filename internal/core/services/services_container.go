package services

import (
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workspace service first since every other service authorizes through it
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo)

	authorizer := container.Workspace.(portssvc.WorkspaceAuthorizerSvc)

	container.Budget = NewBudgetService(
		repos.BudgetRepo,
		WithBudgetWorkspaceAuthorizer(authorizer),
	)
	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Budget, authorizer)
	container.Summary = NewSummaryService(
		repos.SummaryRepo,
		repos.BudgetRepo,
		WithSummaryWorkspaceAuthorizer(authorizer),
	)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.BudgetRepo, authorizer)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.CategoryRepo, container.Budget, authorizer)
	container.Income = NewIncomeService(repos.IncomeRepo, authorizer)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
