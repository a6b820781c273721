// models/user.go
package models

import "time"

// Role determines which surface a user sees: customer, provider or admin.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// User is a platform identity record.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role         Role      `bson:"role" json:"role"`
	Active       bool      `bson:"active" json:"active"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	FirebaseUID  string    `bson:"firebaseUid,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdate carries the optional fields of a partial user update.
// Nil pointers are left untouched by the merge.
type UserUpdate struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Role         *Role   `json:"role,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}
