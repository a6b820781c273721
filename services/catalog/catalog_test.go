package catalog

import (
	"testing"

	serviceRepo "github.com/sud2610/set-u-free-sub000/database/repository/service"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memServiceRepo struct {
	services map[string]*models.Service
}

func newMemServiceRepo(services ...*models.Service) *memServiceRepo {
	r := &memServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}
func (r *memServiceRepo) GetAll() ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}
func (r *memServiceRepo) GetManyByIDs(ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *memServiceRepo) GetByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *memServiceRepo) Search(models.ServiceFilter) ([]models.Service, error) {
	return r.GetAll()
}
func (r *memServiceRepo) Create(s *models.Service) error {
	copied := *s
	r.services[s.ID] = &copied
	return nil
}
func (r *memServiceRepo) UpdateFields(id string, fields bson.M) error {
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	if title, ok := fields["title"].(string); ok {
		s.Title = title
	}
	return nil
}
func (r *memServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return serviceRepo.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func TestCreateServiceAssignsOwner(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	created, err := svc.CreateService("prov-1", CreateServiceRequest{
		Title:           "Deep Clean",
		Category:        "cleaning",
		DurationMinutes: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, "prov-1", created.ProviderID)
	assert.NotEmpty(t, created.ID)
}

func TestUpdateServiceOwnership(t *testing.T) {
	existing := &models.Service{ID: "s1", ProviderID: "prov-1", Title: "Old"}
	newTitle := "New"

	t.Run("owner may update", func(t *testing.T) {
		svc := &DefaultCatalogService{Repo: newMemServiceRepo(existing)}
		got, err := svc.UpdateService("s1", "prov-1", models.ServiceUpdate{Title: &newTitle}, false)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc := &DefaultCatalogService{Repo: newMemServiceRepo(existing)}
		_, err := svc.UpdateService("s1", "prov-2", models.ServiceUpdate{Title: &newTitle}, false)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("force bypasses ownership", func(t *testing.T) {
		svc := &DefaultCatalogService{Repo: newMemServiceRepo(existing)}
		_, err := svc.UpdateService("s1", "admin-1", models.ServiceUpdate{Title: &newTitle}, true)
		assert.NoError(t, err)
	})
}

func TestDeleteServiceOwnership(t *testing.T) {
	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newMemServiceRepo(&models.Service{ID: "s1", ProviderID: "prov-1"})
		svc := &DefaultCatalogService{Repo: repo}
		err := svc.DeleteService("s1", "prov-2", false)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("force delete succeeds", func(t *testing.T) {
		repo := newMemServiceRepo(&models.Service{ID: "s1", ProviderID: "prov-1"})
		svc := &DefaultCatalogService{Repo: repo}
		require.NoError(t, svc.DeleteService("s1", "admin-1", true))
		_, err := repo.GetByID("s1")
		assert.ErrorIs(t, err, serviceRepo.ErrNotFound)
	})
}

func TestListServicesPaginates(t *testing.T) {
	repo := newMemServiceRepo(
		&models.Service{ID: "s1", ProviderID: "p1", Title: "A"},
		&models.Service{ID: "s2", ProviderID: "p1", Title: "B"},
		&models.Service{ID: "s3", ProviderID: "p1", Title: "C"},
	)
	svc := &DefaultCatalogService{Repo: repo}

	page, info, err := svc.ListServices(models.ServiceFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, 3, info.TotalItems)
	assert.Equal(t, 2, info.TotalPages)
}
