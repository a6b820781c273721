package booking

import (
	"fmt"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking inserts a pending appointment for userID. The provider and
// service ids are stored as given; referential integrity is by convention
// only, matching the rest of the data model.
func (s *DefaultBookingService) CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error) {
	b := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		Status:      models.BookingStatusPending,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// GetBooking retrieves a booking by its unique ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// GetUserBookings retrieves a customer's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// GetProviderBookings retrieves a provider's bookings, newest first.
func (s *DefaultBookingService) GetProviderBookings(providerID string) ([]models.Booking, error) {
	return s.Repo.GetByProvider(providerID)
}

// UpdateStatus moves a booking through the transition table:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled,
// completed/cancelled terminal. Re-setting the current status is a no-op
// apart from the updatedAt bump and never errors. Admins may force any
// status; customers may only cancel their own bookings; providers only act
// on their own bookings.
func (s *DefaultBookingService) UpdateStatus(id string, to models.BookingStatus, actor Actor) (*models.Booking, error) {
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleAdmin:
		// Admins keep the original any-to-any power.
	case models.RoleProvider:
		if b.ProviderID != actor.ID {
			return nil, ErrForbidden
		}
		if !b.Status.CanTransitionTo(to) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.Status, to)
		}
	case models.RoleCustomer:
		if b.UserID != actor.ID || to != models.BookingStatusCancelled {
			return nil, ErrForbidden
		}
		if !b.Status.CanTransitionTo(to) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.Status, to)
		}
	default:
		return nil, ErrForbidden
	}

	if err := s.Repo.UpdateStatus(id, to); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	utils.GetLogger().Info("Booking status changed",
		zap.String("bookingID", id),
		zap.String("from", string(b.Status)),
		zap.String("to", string(to)),
		zap.String("actor", actor.ID))

	b.Status = to
	return b, nil
}

// DeleteBooking hard-deletes a booking.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return nil
}
