package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/catalog"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

const serviceListPageSize = 12

// ServiceHandler exposes the public service catalog and the provider's
// offering management.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

func NewServiceHandler(cat catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: cat}
}

// ListServicesHandler handles GET /api/services. Category and providerId are
// exact filters, q is a case-insensitive title/description search.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	f := models.ServiceFilter{
		Category:   c.Query("category"),
		ProviderID: c.Query("providerId"),
		Query:      c.Query("q"),
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", serviceListPageSize)

	services, info, err := h.Catalog.ListServices(f, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"services": services, "pagination": info})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}

// CreateServiceHandler handles POST /api/services. The provider id comes from
// the session, never the payload.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	var req catalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload: "+err.Error())
		return
	}
	svc, err := h.Catalog.CreateService(actorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, svc)
}

// UpdateServiceHandler handles PATCH /api/services/:id with an ownership
// check; admins bypass it.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	actorID, role := currentActor(c)
	var upd models.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	svc, err := h.Catalog.UpdateService(c.Param("id"), actorID, upd, role == models.RoleAdmin)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	actorID, role := currentActor(c)
	if err := h.Catalog.DeleteService(c.Param("id"), actorID, role == models.RoleAdmin); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Service deleted"})
}
