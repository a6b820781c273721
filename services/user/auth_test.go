package user

import (
	"testing"

	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.Error(t, VerifyPasswordComplexity(""))
	assert.Error(t, VerifyPasswordComplexity("short"))
	assert.Error(t, VerifyPasswordComplexity("1234567"))
	assert.NoError(t, VerifyPasswordComplexity("12345678"))
	assert.NoError(t, VerifyPasswordComplexity("a long passphrase"))
}

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrNotFound
}
func (r *memUserRepo) GetByFirebaseUID(uid string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == uid {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrNotFound
}
func (r *memUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}
func (r *memUserRepo) GetManyByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}
func (r *memUserRepo) Create(u *models.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}
func (r *memUserRepo) UpdateFields(id string, fields bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	if uid, ok := fields["firebaseUid"].(string); ok {
		u.FirebaseUID = uid
	}
	return nil
}
func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func TestResolveFirebaseIdentity(t *testing.T) {
	t.Run("existing uid resolves without email", func(t *testing.T) {
		repo := newMemUserRepo(&models.User{ID: "u1", Email: "asha@example.com", FirebaseUID: "fb-1", Active: true})
		svc := &DefaultUserService{Repo: repo}

		u, err := svc.resolveFirebaseIdentity("fb-1", "", "")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
	})

	t.Run("unknown identity without email claim is rejected", func(t *testing.T) {
		svc := &DefaultUserService{Repo: newMemUserRepo()}

		_, err := svc.resolveFirebaseIdentity("fb-new", "", "No Email")
		assert.ErrorIs(t, err, ErrEmailClaimMissing)
	})

	t.Run("links pre-existing account by email", func(t *testing.T) {
		repo := newMemUserRepo(&models.User{ID: "u1", Email: "asha@example.com", Active: true})
		svc := &DefaultUserService{Repo: repo}

		u, err := svc.resolveFirebaseIdentity("fb-1", "asha@example.com", "Asha Rao")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)

		linked, err := repo.GetByFirebaseUID("fb-1")
		require.NoError(t, err)
		assert.Equal(t, "u1", linked.ID)
	})

	t.Run("first sign-in creates an active customer", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := &DefaultUserService{Repo: repo}

		u, err := svc.resolveFirebaseIdentity("fb-1", "asha@example.com", "Asha Rao")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, models.RoleCustomer, u.Role)
		assert.True(t, u.Active)
		assert.Equal(t, "fb-1", u.FirebaseUID)

		stored, err := repo.GetByEmail("asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, stored.ID)
	})
}
