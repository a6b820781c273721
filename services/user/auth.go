package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds both the JWT expiry and the auth-cache entry.
const sessionTTL = 24 * time.Hour

// Register creates a user account and, for provider sign-ups, the matching
// provider profile keyed by the same id.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleProvider {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Role:         role,
		Active:       true,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleProvider {
		p := &models.Provider{
			ID:           u.ID,
			BusinessName: req.BusinessName,
			City:         req.City,
			State:        req.State,
			Location:     req.Location,
			Categories:   req.Categories,
		}
		if err := s.ProviderRepo.Create(p); err != nil {
			// The user document stays; the profile can be re-created later.
			logger.Error("Failed to create provider profile at registration",
				zap.String("userID", u.ID), zap.Error(err))
		}
	}

	return s.issueSession(u)
}

// Authenticate performs email/password sign-in.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if !u.Active {
		return nil, ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(u)
}

// FirebaseSignIn verifies an ID token issued by the external authentication
// provider and maps its UID 1:1 to a user document, creating the document on
// first sign-in.
func (s *DefaultUserService) FirebaseSignIn(idToken string) (*AuthResponse, error) {
	client := utils.FirebaseAuthClient
	if client == nil {
		return nil, ErrFirebaseUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	u, err := s.resolveFirebaseIdentity(token.UID, email, name)
	if err != nil {
		return nil, err
	}

	if !u.Active {
		return nil, ErrAccountDisabled
	}
	return s.issueSession(u)
}

// resolveFirebaseIdentity maps a verified external identity to a user
// document: by UID first, then by email (linking the UID to the account),
// creating a fresh customer record otherwise. Accounts are keyed by a
// unique email, so an identity without one is rejected outright.
func (s *DefaultUserService) resolveFirebaseIdentity(uid, email, name string) (*models.User, error) {
	u, err := s.Repo.GetByFirebaseUID(uid)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u != nil {
		return u, nil
	}

	if email == "" {
		return nil, ErrEmailClaimMissing
	}

	// The identity may belong to an account that predates the firebase
	// link; reconcile by email before creating a fresh record.
	u, err = s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if u != nil {
		if err := s.Repo.UpdateFields(u.ID, bson.M{"firebaseUid": uid}); err != nil {
			return nil, fmt.Errorf("failed to link firebase identity: %w", err)
		}
		return u, nil
	}

	u = &models.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Role:        models.RoleCustomer,
		Active:      true,
		FirebaseUID: uid,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// SignOut revokes the user's session token.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Error("Failed to clear auth cache on sign-out", zap.Error(err))
	}
	return nil
}

// issueSession generates a JWT, persists its hash on the user document and
// mirrors it into the auth cache.
func (s *DefaultUserService) issueSession(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateFields(u.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), utils.AuthCachePrefix+u.ID, tokenHash, sessionTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache session token", zap.Error(err))
	}

	return &AuthResponse{
		ID:           u.ID,
		Token:        token,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
	}, nil
}

// VerifyPasswordComplexity applies the minimal password policy.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
