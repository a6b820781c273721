package referenceRepo

import (
	"errors"

	"github.com/sud2610/set-u-free-sub000/models"
)

// ErrNotFound is returned when no reference row matches the lookup.
var ErrNotFound = errors.New("reference row not found")

// ReferenceRepository manages the city and category reference lists. Nothing
// else enforces that entity city/category strings match these rows; that is
// the marketplace's free-text duplication risk, kept as-is.
type ReferenceRepository interface {
	// GetAllCities returns the city reference list, name-ordered.
	GetAllCities() ([]models.City, error)
	// GetAllCategories returns the category reference list, name-ordered.
	GetAllCategories() ([]models.Category, error)
	// CreateCity inserts a city reference row.
	CreateCity(c *models.City) error
	// CreateCategory inserts a category reference row.
	CreateCategory(c *models.Category) error
	// DeleteCity removes a city reference row by its ID.
	DeleteCity(id string) error
	// DeleteCategory removes a category reference row by its ID.
	DeleteCategory(id string) error
}
