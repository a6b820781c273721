package user

import (
	providerRepo "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"
)

// RegistrationRequest carries a sign-up payload. BusinessName and City are
// required only when Role is provider; the matching provider profile is
// created under the same id.
type RegistrationRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Phone    string      `json:"phone"`
	Location string      `json:"location"`
	Role     models.Role `json:"role"`

	BusinessName string   `json:"businessName"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Categories   []string `json:"categories"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID           string      `json:"id"`
	Token        string      `json:"token"`
	Name         string      `json:"name,omitempty"`
	Email        string      `json:"email,omitempty"`
	Role         models.Role `json:"role,omitempty"`
	ProfileImage string      `json:"profileImage,omitempty"`
}

type UserService interface {
	// Registration / authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	// FirebaseSignIn exchanges a verified Firebase ID token for a native
	// session, creating the user document on first sign-in.
	FirebaseSignIn(idToken string) (*AuthResponse, error)
	SignOut(userID string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(userID string, upd models.UserUpdate) (*models.User, error)
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
}
