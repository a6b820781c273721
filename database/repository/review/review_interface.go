package reviewRepo

import (
	"errors"

	"github.com/sud2610/set-u-free-sub000/models"
)

// ErrNotFound is returned when no review matches the lookup.
var ErrNotFound = errors.New("review not found")

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// GetAll retrieves all reviews, newest first.
	GetAll() ([]models.Review, error)
	// GetByProvider retrieves a provider's reviews, newest first.
	GetByProvider(providerID string) ([]models.Review, error)
	// Create inserts a new review record. Reviews have no edit path.
	Create(rv *models.Review) error
	// Delete removes a review record by its ID (admin only).
	Delete(id string) error
}
