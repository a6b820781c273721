package handlers

import (
	"net/http"
	"time"

	referenceRepo "github.com/sud2610/set-u-free-sub000/database/repository/reference"
	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MetaHandler serves the city and category reference lists the client uses
// to populate filter dropdowns. Mutations are admin-only.
type MetaHandler struct {
	Repo referenceRepo.ReferenceRepository
}

func NewMetaHandler(repo referenceRepo.ReferenceRepository) *MetaHandler {
	return &MetaHandler{Repo: repo}
}

// GetCitiesHandler handles GET /api/meta/cities.
func (h *MetaHandler) GetCitiesHandler(c *gin.Context) {
	cities, err := h.Repo.GetAllCities()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cities)
}

// GetCategoriesHandler handles GET /api/meta/categories.
func (h *MetaHandler) GetCategoriesHandler(c *gin.Context) {
	categories, err := h.Repo.GetAllCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, categories)
}

// CreateCityHandler handles POST /api/admin/cities.
func (h *MetaHandler) CreateCityHandler(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		State string `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	city := models.City{
		ID:        uuid.New().String(),
		Name:      req.Name,
		State:     req.State,
		CreatedAt: time.Now(),
	}
	if err := h.Repo.CreateCity(&city); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, city)
}

// CreateCategoryHandler handles POST /api/admin/categories.
func (h *MetaHandler) CreateCategoryHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	}
	cat := models.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := h.Repo.CreateCategory(&cat); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cat)
}

// DeleteCityHandler handles DELETE /api/admin/cities/:id.
func (h *MetaHandler) DeleteCityHandler(c *gin.Context) {
	if err := h.Repo.DeleteCity(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "City deleted"})
}

// DeleteCategoryHandler handles DELETE /api/admin/categories/:id.
func (h *MetaHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Repo.DeleteCategory(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
