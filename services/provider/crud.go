package provider

import (
	"fmt"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/listing"

	"go.mongodb.org/mongo-driver/bson"
)

// GetProviderByID retrieves a provider by its unique ID.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	return s.Repo.GetByID(id)
}

// SearchProviders applies zero or more equality filters and paginates the
// creation-ordered result.
func (s *DefaultProviderService) SearchProviders(f models.ProviderFilter, page, pageSize int) ([]models.Provider, models.PageInfo, error) {
	providers, err := s.Repo.Search(f)
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to search providers: %w", err)
	}

	lo, hi, info := listing.Page(len(providers), page, pageSize)
	return providers[lo:hi], info, nil
}

// UpdateProvider applies a partial update; nil fields are left untouched.
// The verified flag is deliberately absent here, see SetVerified.
func (s *DefaultProviderService) UpdateProvider(id string, upd models.ProviderUpdate) (*models.Provider, error) {
	fields := bson.M{}
	if upd.BusinessName != nil {
		fields["businessName"] = *upd.BusinessName
	}
	if upd.City != nil {
		fields["city"] = *upd.City
	}
	if upd.State != nil {
		fields["state"] = *upd.State
	}
	if upd.Location != nil {
		fields["location"] = *upd.Location
	}
	if upd.Categories != nil {
		fields["categories"] = *upd.Categories
	}
	if upd.ProfileImage != nil {
		fields["profileImage"] = *upd.ProfileImage
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}
	return s.Repo.GetByID(id)
}

// SetVerified flips the admin-controlled vetting flag.
func (s *DefaultProviderService) SetVerified(id string, verified bool) (*models.Provider, error) {
	if err := s.Repo.UpdateFields(id, bson.M{"verified": verified}); err != nil {
		return nil, fmt.Errorf("failed to set verified flag: %w", err)
	}
	return s.Repo.GetByID(id)
}

// DeleteProvider removes a provider profile. The owning user account and any
// services, bookings or reviews referencing it remain; orphans are rendered
// as "Unknown" wherever they are joined.
func (s *DefaultProviderService) DeleteProvider(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	return nil
}

// GetAllProviders retrieves every provider, newest first.
func (s *DefaultProviderService) GetAllProviders() ([]models.Provider, error) {
	return s.Repo.GetAll()
}
