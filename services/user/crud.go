package user

import (
	"fmt"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateUser applies a partial update; nil fields are left untouched.
func (s *DefaultUserService) UpdateUser(userID string, upd models.UserUpdate) (*models.User, error) {
	logger := utils.GetLogger()
	logger.Debug("UpdateUser called", zap.String("userID", userID))

	fields := bson.M{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.Location != nil {
		fields["location"] = *upd.Location
	}
	if upd.ProfileImage != nil {
		fields["profileImage"] = *upd.ProfileImage
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return nil, fmt.Errorf("invalid role %q", *upd.Role)
		}
		fields["role"] = *upd.Role
	}
	if upd.Active != nil {
		fields["active"] = *upd.Active
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// UpdateUserPassword verifies the current password and stores a new hash.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if len(existing.PasswordHash) > 0 {
		if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
			return fmt.Errorf("current password is incorrect")
		}
	}

	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	// Changing the password invalidates the current session.
	if err := s.Repo.UpdateFields(userID, bson.M{"passwordHash": string(newHash), "tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteUser removes a user by ID. Any provider profile, bookings or reviews
// referencing it are left behind; views render "Unknown" for the gap.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", userID, err)
	}
	return nil
}

// GetAllUsers retrieves every user, newest first.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
