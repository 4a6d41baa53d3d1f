package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
	"github.com/KayaDyLux/ExpenseManager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests for budget-to-budget transfers.
type transferHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransferHandler(ls portssvc.LedgerSvcFacade) *transferHandler {
	return &transferHandler{ledgerService: ls}
}

// registerTransferRoutes registers transfer and entry lookup routes under a
// specific workspace.
func registerTransferRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransferHandler(ledgerService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:transfer_id", h.getTransfer)
	}
	rg.GET("/entries/:entry_id", h.getEntry)
}

// createTransfer atomically moves funds between two budgets. A replayed
// idempotency key answers 409 without writing anything.
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.ledgerService.Transfer(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to create transfer in service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Transfer created successfully", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	transferID := c.Param("transfer_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transfer, err := h.ledgerService.GetTransfer(c.Request.Context(), workspaceID, transferID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get transfer from service", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

func (h *transferHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	entryID := c.Param("entry_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), workspaceID, entryID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get ledger entry from service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}
