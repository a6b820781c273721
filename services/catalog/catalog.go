package catalog

import (
	"fmt"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/listing"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GetServiceByID retrieves a service by its unique ID.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

// ListServices applies the category/provider/substring filters and paginates
// the creation-ordered result.
func (s *DefaultCatalogService) ListServices(f models.ServiceFilter, page, pageSize int) ([]models.Service, models.PageInfo, error) {
	services, err := s.Repo.Search(f)
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to list services: %w", err)
	}

	lo, hi, info := listing.Page(len(services), page, pageSize)
	return services[lo:hi], info, nil
}

// GetProviderServices retrieves a provider's offerings, newest first.
func (s *DefaultCatalogService) GetProviderServices(providerID string) ([]models.Service, error) {
	return s.Repo.GetByProvider(providerID)
}

// CreateService inserts a new offering owned by providerID.
func (s *DefaultCatalogService) CreateService(providerID string, req CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		ID:              uuid.NewString(),
		ProviderID:      providerID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Images:          req.Images,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// UpdateService applies a partial update after checking ownership.
func (s *DefaultCatalogService) UpdateService(id, actorID string, upd models.ServiceUpdate, force bool) (*models.Service, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !force && existing.ProviderID != actorID {
		return nil, ErrNotOwner
	}

	fields := bson.M{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Category != nil {
		fields["category"] = *upd.Category
	}
	if upd.DurationMinutes != nil {
		fields["durationMinutes"] = *upd.DurationMinutes
	}
	if upd.Images != nil {
		fields["images"] = *upd.Images
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.Repo.GetByID(id)
}

// DeleteService hard-deletes after checking ownership; admins pass force.
// No cascade; bookings keep their dangling serviceId.
func (s *DefaultCatalogService) DeleteService(id, actorID string, force bool) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if !force && existing.ProviderID != actorID {
		return ErrNotOwner
	}
	return s.Repo.Delete(id)
}
