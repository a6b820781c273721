package fixtures

import (
	"path/filepath"
	"testing"

	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Users: []models.User{
			{ID: "p1", Role: models.RoleProvider},
			{ID: "p2", Role: models.RoleProvider},
			{ID: "u1", Role: models.RoleCustomer},
			{ID: "u2", Role: models.RoleCustomer},
			{ID: "a1", Role: models.RoleAdmin},
		},
		Providers: []models.Provider{
			{ID: "p1", BusinessName: "Pune Plumbers", City: "Pune"},
			{ID: "p2", BusinessName: "Delhi Decor", City: "Delhi"},
		},
		Services: []models.Service{
			{ID: "s1", ProviderID: "p1"},
			{ID: "s2", ProviderID: "p2"},
		},
		Bookings: []models.Booking{
			{ID: "b1", UserID: "u1", ProviderID: "p1", ServiceID: "s1"},
			{ID: "b2", UserID: "u2", ProviderID: "p2", ServiceID: "s2"},
		},
		Reviews: []models.Review{
			{ID: "r1", UserID: "u1", ProviderID: "p1", Rating: 5},
			{ID: "r2", UserID: "u2", ProviderID: "p2", Rating: 3},
		},
		Cities: []models.City{
			{ID: "c1", Name: "Pune"},
			{ID: "c2", Name: "Delhi"},
		},
		Categories: []models.Category{
			{ID: "cat1", Name: "plumbing"},
		},
	}
}

func TestFilterByCitiesKeepsReachableGraph(t *testing.T) {
	got := FilterByCities(sampleDataset(), []string{"Pune"})

	require.Len(t, got.Providers, 1)
	assert.Equal(t, "p1", got.Providers[0].ID)

	require.Len(t, got.Services, 1)
	assert.Equal(t, "s1", got.Services[0].ID)

	require.Len(t, got.Bookings, 1)
	assert.Equal(t, "b1", got.Bookings[0].ID)

	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "r1", got.Reviews[0].ID)

	require.Len(t, got.Cities, 1)
	assert.Equal(t, "Pune", got.Cities[0].Name)

	// Categories pass through untouched.
	assert.Len(t, got.Categories, 1)
}

func TestFilterByCitiesKeepsOwnersCustomersAndAdmins(t *testing.T) {
	got := FilterByCities(sampleDataset(), []string{"Pune"})

	ids := make(map[string]bool)
	for _, u := range got.Users {
		ids[u.ID] = true
	}
	assert.True(t, ids["p1"], "kept provider's owner account survives")
	assert.True(t, ids["u1"], "customer referenced by a kept booking survives")
	assert.True(t, ids["a1"], "admins always survive")
	assert.False(t, ids["p2"], "dropped provider's owner account goes")
	assert.False(t, ids["u2"], "customer only referenced by dropped data goes")
}

func TestFilterByCitiesNoMatches(t *testing.T) {
	got := FilterByCities(sampleDataset(), []string{"Nowhere"})
	assert.Empty(t, got.Providers)
	assert.Empty(t, got.Services)
	assert.Empty(t, got.Bookings)
	require.Len(t, got.Users, 1)
	assert.Equal(t, models.RoleAdmin, got.Users[0].Role)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, Save(path, sampleDataset()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Users, 5)
	assert.Len(t, got.Providers, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
