package v1

import (
	"net/http"

	"github.com/bangazon/bangazon-api/internal/domain/categories"

	"github.com/gin-gonic/gin"
)

// CategoryHandler defines the interface for handling category-related operations
type CategoryHandler interface {
	List(ctx *gin.Context)
	Retrieve(ctx *gin.Context)
}

// categoryHandler struct holds the services
type categoryHandler struct {
	categoryService categories.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService categories.CategoryService) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
	}
}

// List handles the GET request to list all categories
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (handler *categoryHandler) List(ctx *gin.Context) {
	categoryList, err := handler.categoryService.List(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	listResponse := make([]CategoryResponse, 0, len(categoryList))
	for _, category := range categoryList {
		listResponse = append(listResponse, NewCategoryResponse(category))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Retrieve handles the GET request to fetch a single category by its ID
// @Summary Retrieve a category
// @Tags Category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (handler *categoryHandler) Retrieve(ctx *gin.Context) {
	categoryID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	category, err := handler.categoryService.GetByID(ctx.Request.Context(), categoryID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCategoryResponse(category))
}
