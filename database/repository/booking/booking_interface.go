package bookingRepo

import (
	"errors"

	"github.com/sud2610/set-u-free-sub000/models"
)

// ErrNotFound is returned when no booking matches the lookup.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetByUser retrieves a customer's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByProvider retrieves a provider's bookings, newest first.
	GetByProvider(providerID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// UpdateStatus sets the booking status and bumps updatedAt. Transition
	// legality is the service layer's concern, not the repository's.
	UpdateStatus(id string, status models.BookingStatus) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
