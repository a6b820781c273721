package catalog

import (
	"errors"

	serviceRepo "github.com/sud2610/set-u-free-sub000/database/repository/service"
	"github.com/sud2610/set-u-free-sub000/models"
)

// ErrNotOwner is returned when a provider touches a service it does not own.
var ErrNotOwner = errors.New("service does not belong to this provider")

// CreateServiceRequest carries a new offering.
type CreateServiceRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Category        string   `json:"category" binding:"required"`
	DurationMinutes int      `json:"durationMinutes" binding:"required,gt=0"`
	Images          []string `json:"images"`
}

// CatalogService manages the service offerings of providers.
type CatalogService interface {
	GetServiceByID(id string) (*models.Service, error)
	// ListServices applies the public listing filters and paginates
	// server-side.
	ListServices(f models.ServiceFilter, page, pageSize int) ([]models.Service, models.PageInfo, error)
	GetProviderServices(providerID string) ([]models.Service, error)
	CreateService(providerID string, req CreateServiceRequest) (*models.Service, error)
	// UpdateService and DeleteService enforce ownership unless force is set
	// (admin force-delete path).
	UpdateService(id, actorID string, upd models.ServiceUpdate, force bool) (*models.Service, error)
	DeleteService(id, actorID string, force bool) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
