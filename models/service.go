// models/service.go
package models

import "time"

// Service is an offering owned by a provider (N:1 via ProviderID).
type Service struct {
	ID              string    `bson:"id" json:"id"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Category        string    `bson:"category" json:"category"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Images          []string  `bson:"images,omitempty" json:"images,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceUpdate carries the optional fields of a partial service update.
type ServiceUpdate struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Category        *string   `json:"category,omitempty"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	Images          *[]string `json:"images,omitempty"`
}

// ServiceFilter holds the filters of a public service listing.
type ServiceFilter struct {
	Category   string
	ProviderID string
	Query      string // case-insensitive substring over title and description
}
