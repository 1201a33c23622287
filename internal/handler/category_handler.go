package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	tree, err := h.categoryService.GetCategories(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return NewInternalError(c, "Failed to retrieve categories")
	}
	return c.JSON(http.StatusOK, tree)
}

// GetFlatCategories handles GET /api/categories/flat
func (h *CategoryHandler) GetFlatCategories(c echo.Context) error {
	categories, err := h.categoryService.GetFlatCategories(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return NewInternalError(c, "Failed to retrieve categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryService.GetCategoryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Msg("Failed to get category")
		return NewInternalError(c, "Failed to retrieve category")
	}
	return c.JSON(http.StatusOK, category)
}

// ResetCategories handles POST /api/categories/reset
func (h *CategoryHandler) ResetCategories(c echo.Context) error {
	tree, err := h.categoryService.ResetCategories(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to reset categories")
		return NewInternalError(c, "Failed to reset categories")
	}
	return c.JSON(http.StatusOK, tree)
}
