package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
	"github.com/KayaDyLux/ExpenseManager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
}

// newWorkspaceHandler creates a new workspaceHandler.
func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
	}
}

// registerWorkspaceRoutes registers routes for workspaces and their members,
// plus all the workspace-scoped resources nested under a workspace ID.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace)

	workspacesTopLevel := rg.Group("/workspaces")
	{
		workspacesTopLevel.POST("", h.createWorkspace)
		workspacesTopLevel.GET("", h.listUserWorkspaces)
	}

	workspaceSpecific := rg.Group("/workspaces/:workspace_id")
	{
		workspaceSpecific.GET("", h.getWorkspace)

		workspaceUsers := workspaceSpecific.Group("/users")
		{
			workspaceUsers.POST("", h.addUserToWorkspace)
			workspaceUsers.GET("", h.listWorkspaceMembers)
		}

		registerBudgetRoutes(workspaceSpecific, services.Budget, services.Ledger, services.Summary)
		registerTransferRoutes(workspaceSpecific, services.Ledger)
		registerSummaryRoutes(workspaceSpecific, services.Summary)
		registerCategoryRoutes(workspaceSpecific, services.Category)
		registerExpenseRoutes(workspaceSpecific, services.Expense)
		registerIncomeRoutes(workspaceSpecific, services.Income)
	}
}

// createWorkspace creates a workspace and makes the caller its admin.
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create workspace", slog.String("workspace_name", req.Name))

	newWorkspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create workspace in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workspace"})
		return
	}

	logger.Info("Workspace created successfully", slog.String("workspace_id", newWorkspace.WorkspaceID))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(newWorkspace))
}

// listUserWorkspaces lists the workspaces the calling user belongs to.
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list workspaces from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workspaces"})
		return
	}

	c.JSON(http.StatusOK, dto.ListWorkspacesResponse{Workspaces: dto.ToWorkspaceResponses(workspaces)})
}

// getWorkspace returns one workspace; non-members get a 404, never a 403,
// so workspace existence stays private.
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), workspaceID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get workspace from service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// addUserToWorkspace adds or re-roles a member (admin only).
func (h *workspaceHandler) addUserToWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	var req dto.AddUserToWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserToWorkspace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Adding user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("workspace_id", workspaceID), slog.String("target_user_id", req.UserID))
	logger.Info("Received request to add user to workspace", slog.String("role", req.Role))

	err := h.workspaceService.AddUserToWorkspace(c.Request.Context(), addingUserID, req.UserID, workspaceID, domain.UserWorkspaceRole(req.Role))
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to add user to workspace in service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("User added to workspace successfully")
	c.Status(http.StatusNoContent)
}

// listWorkspaceMembers lists the memberships of a workspace.
func (h *workspaceHandler) listWorkspaceMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.workspaceService.ListWorkspaceMembers(c.Request.Context(), workspaceID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to list workspace members", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.ToWorkspaceMemberResponses(members)})
}
