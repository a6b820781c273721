package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/catalog"
	"github.com/sud2610/set-u-free-sub000/services/provider"
	"github.com/sud2610/set-u-free-sub000/services/review"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

const providerSearchPageSize = 12

// ProviderHandler exposes the public provider directory and the provider's
// own profile management.
type ProviderHandler struct {
	Service provider.ProviderService
	Catalog catalog.CatalogService
	Reviews review.ReviewService
}

func NewProviderHandler(svc provider.ProviderService, cat catalog.CatalogService, rev review.ReviewService) *ProviderHandler {
	return &ProviderHandler{Service: svc, Catalog: cat, Reviews: rev}
}

// SearchProvidersHandler handles GET /api/providers. Category and city are
// exact-match filters, q searches business name and bio; results are
// paginated server-side.
func (h *ProviderHandler) SearchProvidersHandler(c *gin.Context) {
	f := models.ProviderFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Query:    c.Query("q"),
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", providerSearchPageSize)

	providers, info, err := h.Service.SearchProviders(f, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"providers": providers, "pagination": info})
}

// GetProviderByIDHandler handles GET /api/providers/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	p, err := h.Service.GetProviderByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// UpdateProviderHandler handles PATCH /api/providers/:id. Only the provider
// themselves may edit the profile, and the verified flag is admin-only.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	id := c.Param("id")
	actorID, role := currentActor(c)
	if actorID != id && role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "Cannot update another provider's profile")
		return
	}
	var upd models.ProviderUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	upd.Verified = nil
	p, err := h.Service.UpdateProvider(id, upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// GetProviderServicesHandler handles GET /api/providers/:id/services.
func (h *ProviderHandler) GetProviderServicesHandler(c *gin.Context) {
	services, err := h.Catalog.GetProviderServices(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services)
}

// GetProviderReviewsHandler handles GET /api/providers/:id/reviews.
func (h *ProviderHandler) GetProviderReviewsHandler(c *gin.Context) {
	reviews, err := h.Reviews.GetProviderReviews(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}
