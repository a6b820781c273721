package booking

import (
	"time"

	bookingRepo "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	"github.com/sud2610/set-u-free-sub000/models"
)

// CreateBookingRequest carries a new appointment.
type CreateBookingRequest struct {
	ProviderID  string    `json:"providerId" binding:"required"`
	ServiceID   string    `json:"serviceId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Notes       string    `json:"notes"`
}

// Actor identifies who is performing a booking mutation.
type Actor struct {
	ID   string
	Role models.Role
}

type BookingService interface {
	CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	GetProviderBookings(providerID string) ([]models.Booking, error)
	// UpdateStatus applies the transition table. Providers may only touch
	// their own bookings; admins may force any status from any state.
	UpdateStatus(id string, to models.BookingStatus, actor Actor) (*models.Booking, error)
	// DeleteBooking hard-deletes (admin only, enforced at the route).
	DeleteBooking(id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
