package provider

import (
	providerRepo "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	reviewRepo "github.com/sud2610/set-u-free-sub000/database/repository/review"
	"github.com/sud2610/set-u-free-sub000/models"
)

type ProviderService interface {
	GetProviderByID(id string) (*models.Provider, error)
	// SearchProviders applies the directory filters and paginates the
	// result server-side.
	SearchProviders(f models.ProviderFilter, page, pageSize int) ([]models.Provider, models.PageInfo, error)
	UpdateProvider(id string, upd models.ProviderUpdate) (*models.Provider, error)
	// SetVerified flips the admin-controlled vetting flag.
	SetVerified(id string, verified bool) (*models.Provider, error)
	DeleteProvider(id string) error

	// RecomputeRating recalculates the denormalized rating/reviewCount pair
	// from the reviews collection and stores it.
	RecomputeRating(providerID string) error

	// Admin / utility
	GetAllProviders() ([]models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo    providerRepo.ProviderRepository
	Reviews reviewRepo.ReviewRepository
}
