// models/provider.go
package models

import "time"

// Provider is a business profile. Its ID equals the owning user's ID (1:1);
// nothing enforces that the user still exists, and orphans are tolerated
// everywhere providers are joined in.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"businessName" json:"businessName"`
	City         string    `bson:"city" json:"city"`
	State        string    `bson:"state,omitempty" json:"state,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	Categories   []string  `bson:"categories" json:"categories"`
	Verified     bool      `bson:"verified" json:"verified"`
	Rating       float64   `bson:"rating" json:"rating"`
	ReviewCount  int       `bson:"reviewCount" json:"reviewCount"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProviderUpdate carries the optional fields of a partial provider update.
type ProviderUpdate struct {
	BusinessName *string   `json:"businessName,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Categories   *[]string `json:"categories,omitempty"`
	Verified     *bool     `json:"verified,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
}

// ProviderFilter holds the optional filters of a provider search. Category
// and City are exact-match; Query is a case-insensitive substring match over
// business name and bio. Empty fields match everything.
type ProviderFilter struct {
	Category string
	City     string
	Query    string
}
