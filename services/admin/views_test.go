package admin

import (
	"testing"

	bookingRepo "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	providerRepo "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	reviewRepo "github.com/sud2610/set-u-free-sub000/database/repository/review"
	serviceRepo "github.com/sud2610/set-u-free-sub000/database/repository/service"
	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes. Only the read paths the reporting service
// touches carry real behavior.

type fakeUserRepo struct{ users []models.User }

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, userRepo.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)       { return nil, userRepo.ErrNotFound }
func (f *fakeUserRepo) GetByFirebaseUID(string) (*models.User, error) { return nil, userRepo.ErrNotFound }
func (f *fakeUserRepo) GetAll() ([]models.User, error)                { return f.users, nil }
func (f *fakeUserRepo) GetManyByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}
func (f *fakeUserRepo) Create(u *models.User) error            { f.users = append(f.users, *u); return nil }
func (f *fakeUserRepo) UpdateFields(string, bson.M) error      { return nil }
func (f *fakeUserRepo) Delete(string) error                    { return nil }

type fakeProviderRepo struct{ providers []models.Provider }

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, providerRepo.ErrNotFound
}
func (f *fakeProviderRepo) GetAll() ([]models.Provider, error) { return f.providers, nil }
func (f *fakeProviderRepo) GetManyByIDs(ids []string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
func (f *fakeProviderRepo) Search(models.ProviderFilter) ([]models.Provider, error) {
	return f.providers, nil
}
func (f *fakeProviderRepo) Create(p *models.Provider) error        { f.providers = append(f.providers, *p); return nil }
func (f *fakeProviderRepo) UpdateFields(string, bson.M) error      { return nil }
func (f *fakeProviderRepo) SetRating(string, float64, int) error   { return nil }
func (f *fakeProviderRepo) Delete(string) error                    { return nil }

type fakeServiceRepo struct{ services []models.Service }

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, serviceRepo.ErrNotFound
}
func (f *fakeServiceRepo) GetAll() ([]models.Service, error) { return f.services, nil }
func (f *fakeServiceRepo) GetManyByIDs(ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}
func (f *fakeServiceRepo) GetByProvider(string) ([]models.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Search(models.ServiceFilter) ([]models.Service, error) {
	return f.services, nil
}
func (f *fakeServiceRepo) Create(s *models.Service) error     { f.services = append(f.services, *s); return nil }
func (f *fakeServiceRepo) UpdateFields(string, bson.M) error  { return nil }
func (f *fakeServiceRepo) Delete(string) error                { return nil }

type fakeBookingRepo struct{ bookings []models.Booking }

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}
func (f *fakeBookingRepo) GetAll() ([]models.Booking, error)            { return f.bookings, nil }
func (f *fakeBookingRepo) GetByUser(string) ([]models.Booking, error)     { return nil, nil }
func (f *fakeBookingRepo) GetByProvider(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}
func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}
func (f *fakeBookingRepo) Delete(id string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

type fakeReviewRepo struct{ reviews []models.Review }

func (f *fakeReviewRepo) GetByID(id string) (*models.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, reviewRepo.ErrNotFound
}
func (f *fakeReviewRepo) GetAll() ([]models.Review, error)              { return f.reviews, nil }
func (f *fakeReviewRepo) GetByProvider(string) ([]models.Review, error) { return f.reviews, nil }
func (f *fakeReviewRepo) Create(r *models.Review) error                 { f.reviews = append(f.reviews, *r); return nil }
func (f *fakeReviewRepo) Delete(string) error                           { return nil }

func newTestAdminService() (*DefaultAdminService, *fakeBookingRepo) {
	users := &fakeUserRepo{users: []models.User{
		{ID: "u1", Name: "Asha Rao", Email: "asha@example.com", Role: models.RoleCustomer, Active: true},
		{ID: "u2", Name: "Vikram Shah", Email: "vikram@example.com", Role: models.RoleCustomer, Active: true},
		{ID: "p1", Name: "Meera Joshi", Email: "meera@example.com", Role: models.RoleProvider, Active: true},
	}}
	providers := &fakeProviderRepo{providers: []models.Provider{
		{ID: "p1", BusinessName: "Sparkle Cleaners", City: "Pune", Categories: []string{"cleaning"}},
	}}
	services := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", ProviderID: "p1", Title: "Deep Clean", Category: "cleaning"},
	}}
	bookings := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", UserID: "u1", ProviderID: "p1", ServiceID: "s1", Status: models.BookingStatusPending},
		{ID: "b2", UserID: "u2", ProviderID: "p1", ServiceID: "s1", Status: models.BookingStatusPending},
		{ID: "b3", UserID: "u1", ProviderID: "p1", ServiceID: "s1", Status: models.BookingStatusCompleted},
	}}
	reviews := &fakeReviewRepo{}

	return &DefaultAdminService{
		Users:     users,
		Providers: providers,
		Services:  services,
		Bookings:  bookings,
		Reviews:   reviews,
	}, bookings
}

func TestJoinBookingViewsUnknownFallback(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", UserID: "gone", ProviderID: "gone", ServiceID: "gone"},
	}
	views := JoinBookingViews(bookings, nil, nil, nil)

	require.Len(t, views, 1)
	assert.Equal(t, models.UnknownLabel, views[0].CustomerName)
	assert.Equal(t, models.UnknownLabel, views[0].CustomerEmail)
	assert.Equal(t, models.UnknownLabel, views[0].ProviderName)
	assert.Equal(t, models.UnknownLabel, views[0].ServiceTitle)
}

func TestFilterBookingViews(t *testing.T) {
	views := []models.BookingView{
		{Booking: models.Booking{ID: "b1", Status: models.BookingStatusPending}, CustomerName: "Asha Rao", CustomerEmail: "asha@example.com", ProviderName: "Sparkle", ServiceTitle: "Deep Clean"},
		{Booking: models.Booking{ID: "b2", Status: models.BookingStatusCompleted}, CustomerName: "Vikram Shah", CustomerEmail: "vikram@example.com", ProviderName: "Sparkle", ServiceTitle: "Deep Clean"},
	}

	t.Run("search matches any joined field", func(t *testing.T) {
		got := FilterBookingViews(views, BookingListQuery{Search: "asha"})
		require.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)

		got = FilterBookingViews(views, BookingListQuery{Search: "sparkle"})
		assert.Len(t, got, 2)
	})

	t.Run("status is exact and combines with search", func(t *testing.T) {
		got := FilterBookingViews(views, BookingListQuery{Status: models.BookingStatusCompleted})
		require.Len(t, got, 1)
		assert.Equal(t, "b2", got[0].ID)

		got = FilterBookingViews(views, BookingListQuery{Status: models.BookingStatusCompleted, Search: "asha"})
		assert.Empty(t, got)
	})
}

func TestListBookingsFilterLifecycle(t *testing.T) {
	svc, repo := newTestAdminService()

	pending, info, err := svc.ListBookings(BookingListQuery{Status: models.BookingStatusPending, Page: 1})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, 2, info.TotalItems)

	all, info, err := svc.ListBookings(BookingListQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Asha Rao", all[0].CustomerName)
	assert.Equal(t, "Sparkle Cleaners", all[0].ProviderName)
	assert.Equal(t, "Deep Clean", all[0].ServiceTitle)
	assert.Equal(t, []int{1}, info.Window)

	require.NoError(t, repo.Delete("b1"))
	pending, _, err = svc.ListBookings(BookingListQuery{Status: models.BookingStatusPending, Page: 1})
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestGetBookingView(t *testing.T) {
	svc, _ := newTestAdminService()

	view, err := svc.GetBookingView("b1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", view.CustomerName)
	assert.Equal(t, "asha@example.com", view.CustomerEmail)

	_, err = svc.GetBookingView("nope")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestListUsersFilters(t *testing.T) {
	svc, _ := newTestAdminService()

	customers, _, err := svc.ListUsers(UserListQuery{Role: models.RoleCustomer, Page: 1})
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	byName, _, err := svc.ListUsers(UserListQuery{Search: "meera", Page: 1})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)
}

func TestListProvidersJoinsOwner(t *testing.T) {
	svc, _ := newTestAdminService()

	providers, _, err := svc.ListProviders(ProviderListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "Meera Joshi", providers[0].OwnerName)
	assert.Equal(t, "meera@example.com", providers[0].OwnerEmail)
}

func TestListServicesJoinsProvider(t *testing.T) {
	svc, _ := newTestAdminService()

	services, _, err := svc.ListServices(ServiceListQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Sparkle Cleaners", services[0].ProviderName)

	none, _, err := svc.ListServices(ServiceListQuery{Category: "plumbing", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, none)
}
