package serviceRepo

import (
	"errors"

	"github.com/sud2610/set-u-free-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no service matches the lookup.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all services, newest first.
	GetAll() ([]models.Service, error)
	// GetManyByIDs retrieves all services whose ID appears in ids, in one query.
	GetManyByIDs(ids []string) ([]models.Service, error)
	// GetByProvider retrieves a provider's services, newest first.
	GetByProvider(providerID string) ([]models.Service, error)
	// Search applies category/provider equality filters plus a
	// case-insensitive substring match over title and description.
	Search(f models.ServiceFilter) ([]models.Service, error)
	// Create inserts a new service record.
	Create(s *models.Service) error
	// UpdateFields applies a partial $set-style merge and bumps updatedAt.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
