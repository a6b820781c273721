// Package fixtures loads, filters and saves the demo dataset used by the
// seeding tools. A dataset is a single JSON document holding every
// collection.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sud2610/set-u-free-sub000/models"
)

// Dataset is the on-disk fixture format.
type Dataset struct {
	Users      []models.User     `json:"users"`
	Providers  []models.Provider `json:"providers"`
	Services   []models.Service  `json:"services"`
	Bookings   []models.Booking  `json:"bookings"`
	Reviews    []models.Review   `json:"reviews"`
	Cities     []models.City     `json:"cities"`
	Categories []models.Category `json:"categories"`
}

// Load reads a dataset from a JSON file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	return &ds, nil
}

// Save writes a dataset as indented JSON.
func Save(path string, ds *Dataset) error {
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("fixtures: encode: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("fixtures: write %s: %w", path, err)
	}
	return nil
}

// FilterByCities keeps only the providers located in the given cities and
// everything reachable from them: their services, bookings against them,
// reviews about them, the users behind those bookings and reviews, and the
// provider owner accounts. Admin users are always kept. The city reference
// list is narrowed to the kept cities; categories pass through untouched.
func FilterByCities(ds *Dataset, cities []string) *Dataset {
	keep := make(map[string]bool, len(cities))
	for _, c := range cities {
		keep[c] = true
	}

	out := &Dataset{Categories: ds.Categories}

	providerIDs := make(map[string]bool)
	for _, p := range ds.Providers {
		if keep[p.City] {
			out.Providers = append(out.Providers, p)
			providerIDs[p.ID] = true
		}
	}

	for _, s := range ds.Services {
		if providerIDs[s.ProviderID] {
			out.Services = append(out.Services, s)
		}
	}

	userIDs := make(map[string]bool)
	for _, b := range ds.Bookings {
		if providerIDs[b.ProviderID] {
			out.Bookings = append(out.Bookings, b)
			userIDs[b.UserID] = true
		}
	}
	for _, r := range ds.Reviews {
		if providerIDs[r.ProviderID] {
			out.Reviews = append(out.Reviews, r)
			userIDs[r.UserID] = true
		}
	}

	// Provider profiles share their id with the owning user account.
	for id := range providerIDs {
		userIDs[id] = true
	}

	for _, u := range ds.Users {
		if userIDs[u.ID] || u.Role == models.RoleAdmin {
			out.Users = append(out.Users, u)
		}
	}

	for _, c := range ds.Cities {
		if keep[c.Name] {
			out.Cities = append(out.Cities, c)
		}
	}

	return out
}
