package providerRepo

import (
	"errors"

	"github.com/sud2610/set-u-free-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no provider matches the lookup.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetAll retrieves all providers, newest first.
	GetAll() ([]models.Provider, error)
	// GetManyByIDs retrieves all providers whose ID appears in ids, in one query.
	GetManyByIDs(ids []string) ([]models.Provider, error)
	// Search applies the optional equality filters of f over the collection.
	Search(f models.ProviderFilter) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(p *models.Provider) error
	// UpdateFields applies a partial $set-style merge and bumps updatedAt.
	UpdateFields(id string, fields bson.M) error
	// SetRating stores the recomputed denormalized rating aggregate.
	SetRating(id string, rating float64, reviewCount int) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
}
