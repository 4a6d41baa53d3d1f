package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
	"github.com/KayaDyLux/ExpenseManager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets and their ledger.
type budgetHandler struct {
	budgetService  portssvc.BudgetSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
	summaryService portssvc.SummarySvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, ls portssvc.LedgerSvcFacade, ss portssvc.SummarySvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService:  bs,
		ledgerService:  ls,
		summaryService: ss,
	}
}

// registerBudgetRoutes registers budget routes under a specific workspace,
// including the funding and listing endpoints of the budget's ledger.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, ledgerService portssvc.LedgerSvcFacade, summaryService portssvc.SummarySvcFacade) {
	h := newBudgetHandler(budgetService, ledgerService, summaryService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:budget_id", h.getBudget)
		budgets.PATCH("/:budget_id", h.updateBudget)
		budgets.POST("/:budget_id/archive", h.archiveBudget)
		budgets.POST("/:budget_id/restore", h.restoreBudget)
		budgets.POST("/:budget_id/fund", h.fundBudget)
		budgets.GET("/:budget_id/entries", h.listEntries)
		budgets.GET("/:budget_id/summary", h.summarizeBudget)
	}
}

func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), workspaceID, req, creatorUserID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to create budget in service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), workspaceID, includeArchived, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to list budgets from service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: dto.ToBudgetResponses(budgets)})
}

func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), workspaceID, budgetID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get budget from service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), workspaceID, budgetID, req, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update budget in service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Budget updated successfully", slog.String("budget_id", budgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) archiveBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.ArchiveBudget(c.Request.Context(), workspaceID, budgetID, userID); err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to archive budget in service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Budget archived successfully", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

func (h *budgetHandler) restoreBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.RestoreBudget(c.Request.Context(), workspaceID, budgetID, userID); err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to restore budget in service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Budget restored successfully", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

// fundBudget appends a funding entry to the budget's ledger.
func (h *budgetHandler) fundBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Fund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.Fund(c.Request.Context(), workspaceID, budgetID, req, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to fund budget in service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Budget funded successfully", slog.String("budget_id", budgetID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries lists the budget's ledger entries, newest first.
func (h *budgetHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), workspaceID, budgetID, params, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to list ledger entries from service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// summarizeBudget returns the derived balance view of one budget.
func (h *budgetHandler) summarizeBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	budgetID := c.Param("budget_id")

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.summaryService.SummarizeBudget(c.Request.Context(), workspaceID, budgetID, params, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to summarize budget in service", slog.String("error", err.Error()), slog.String("budget_id", budgetID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary))
}
