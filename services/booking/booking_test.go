package booking

import (
	"testing"
	"time"

	bookingRepo "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemBookingRepo(bookings ...*models.Booking) *memBookingRepo {
	r := &memBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}
func (r *memBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}
func (r *memBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (r *memBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (r *memBookingRepo) Create(b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}
func (r *memBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	return nil
}
func (r *memBookingRepo) Delete(id string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func newBooking(id string, status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:         id,
		UserID:     "cust-1",
		ProviderID: "prov-1",
		ServiceID:  "svc-1",
		Status:     status,
	}
}

func TestCreateBookingStartsPending(t *testing.T) {
	repo := newMemBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	b, err := svc.CreateBooking("cust-1", CreateBookingRequest{
		ProviderID:  "prov-1",
		ServiceID:   "svc-1",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "cust-1", b.UserID)
}

func TestUpdateStatusTransitions(t *testing.T) {
	provider := Actor{ID: "prov-1", Role: models.RoleProvider}

	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		wantErr error
	}{
		{"pending to confirmed", models.BookingStatusPending, models.BookingStatusConfirmed, nil},
		{"pending to cancelled", models.BookingStatusPending, models.BookingStatusCancelled, nil},
		{"confirmed to completed", models.BookingStatusConfirmed, models.BookingStatusCompleted, nil},
		{"confirmed to cancelled", models.BookingStatusConfirmed, models.BookingStatusCancelled, nil},
		{"pending cannot skip to completed", models.BookingStatusPending, models.BookingStatusCompleted, ErrIllegalTransition},
		{"completed is terminal", models.BookingStatusCompleted, models.BookingStatusCancelled, ErrIllegalTransition},
		{"cancelled is terminal", models.BookingStatusCancelled, models.BookingStatusConfirmed, ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemBookingRepo(newBooking("b1", tt.from))
			svc := &DefaultBookingService{Repo: repo}

			got, err := svc.UpdateStatus("b1", tt.to, provider)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
		})
	}
}

func TestUpdateStatusIdempotentResubmit(t *testing.T) {
	repo := newMemBookingRepo(newBooking("b1", models.BookingStatusConfirmed))
	svc := &DefaultBookingService{Repo: repo}

	got, err := svc.UpdateStatus("b1", models.BookingStatusConfirmed, Actor{ID: "prov-1", Role: models.RoleProvider})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
}

func TestUpdateStatusAdminBypassesTable(t *testing.T) {
	repo := newMemBookingRepo(newBooking("b1", models.BookingStatusCompleted))
	svc := &DefaultBookingService{Repo: repo}

	got, err := svc.UpdateStatus("b1", models.BookingStatusPending, Actor{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestUpdateStatusProviderOwnership(t *testing.T) {
	repo := newMemBookingRepo(newBooking("b1", models.BookingStatusPending))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus("b1", models.BookingStatusConfirmed, Actor{ID: "someone-else", Role: models.RoleProvider})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusCustomerRules(t *testing.T) {
	owner := Actor{ID: "cust-1", Role: models.RoleCustomer}

	t.Run("may cancel own pending booking", func(t *testing.T) {
		repo := newMemBookingRepo(newBooking("b1", models.BookingStatusPending))
		svc := &DefaultBookingService{Repo: repo}

		got, err := svc.UpdateStatus("b1", models.BookingStatusCancelled, owner)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, got.Status)
	})

	t.Run("may not confirm", func(t *testing.T) {
		repo := newMemBookingRepo(newBooking("b1", models.BookingStatusPending))
		svc := &DefaultBookingService{Repo: repo}

		_, err := svc.UpdateStatus("b1", models.BookingStatusConfirmed, owner)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("may not cancel someone else's booking", func(t *testing.T) {
		repo := newMemBookingRepo(newBooking("b1", models.BookingStatusPending))
		svc := &DefaultBookingService{Repo: repo}

		_, err := svc.UpdateStatus("b1", models.BookingStatusCancelled, Actor{ID: "cust-2", Role: models.RoleCustomer})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newMemBookingRepo(newBooking("b1", models.BookingStatusPending))
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.UpdateStatus("b1", models.BookingStatus("archived"), Actor{ID: "admin-1", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
