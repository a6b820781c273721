// models/reference.go
package models

import "time"

// City is a reference row managed through the admin data-management screen.
// Other entities store city names as free text; nothing ties them back here.
type City struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	State     string    `bson:"state" json:"state"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Category is a reference row for service categories.
type Category struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
