package dto

import (
	"time"

	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
)

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name            string  `json:"name" binding:"required"`
	DefaultBudgetID *string `json:"defaultBudgetID"`
}

// UpdateCategoryRequest defines the payload for patching a category.
type UpdateCategoryRequest struct {
	Name            *string `json:"name"`
	DefaultBudgetID *string `json:"defaultBudgetID"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID      string    `json:"categoryID"`
	Name            string    `json:"name"`
	DefaultBudgetID *string   `json:"defaultBudgetID,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListCategoriesResponse wraps a category listing.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:      c.CategoryID,
		Name:            c.Name,
		DefaultBudgetID: c.DefaultBudgetID,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
