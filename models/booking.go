// models/booking.go
package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// bookingTransitions is the allowed transition table:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled,
// completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransitionTo reports whether the transition s -> to is legal.
// Re-setting the current status is always allowed (idempotent).
func (s BookingStatus) CanTransitionTo(to BookingStatus) bool {
	if s == to {
		return true
	}
	for _, next := range bookingTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Booking links a customer, a provider and a service by id. None of the
// foreign keys are enforced; joins must tolerate missing targets.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	ProviderID  string        `bson:"providerId" json:"providerId"`
	ServiceID   string        `bson:"serviceId" json:"serviceId"`
	Status      BookingStatus `bson:"status" json:"status"`
	ScheduledAt time.Time     `bson:"scheduledAt" json:"scheduledAt"`
	Notes       string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
