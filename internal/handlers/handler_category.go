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

// categoryHandler handles HTTP requests related to expense categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers category routes under a specific workspace.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:category_id", h.getCategory)
		categories.PATCH("/:category_id", h.updateCategory)
		categories.POST("/:category_id/archive", h.archiveCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to create category in service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	categories, err := h.categoryService.ListCategories(c.Request.Context(), workspaceID, includeArchived, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to list categories from service", slog.String("error", err.Error()))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: dto.ToCategoryResponses(categories)})
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	categoryID := c.Param("category_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), workspaceID, categoryID, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to get category from service", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	categoryID := c.Param("category_id")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), workspaceID, categoryID, req, userID)
	if err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to update category in service", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Category updated successfully", slog.String("category_id", categoryID))
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) archiveCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workspaceID := c.Param("workspace_id")
	categoryID := c.Param("category_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.categoryService.ArchiveCategory(c.Request.Context(), workspaceID, categoryID, userID); err != nil {
		status, msg := statusFromError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to archive category in service", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Category archived successfully", slog.String("category_id", categoryID))
	c.Status(http.StatusNoContent)
}
