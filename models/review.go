// models/review.go
package models

import "time"

// Review is a 1..5 rating plus comment left by a user about a provider,
// optionally tied to a booking. Reviews are never edited; admins may delete.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	BookingID  string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
