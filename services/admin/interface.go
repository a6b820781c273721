// Package admin is the reporting layer behind the back-office: whole-collection
// rollups, joined list view-models, and the filter/pagination plumbing the
// moderation tables share.
package admin

import (
	bookingRepo "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	providerRepo "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	reviewRepo "github.com/sud2610/set-u-free-sub000/database/repository/review"
	serviceRepo "github.com/sud2610/set-u-free-sub000/database/repository/service"
	userRepo "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/models"
)

// Fixed page sizes per moderation view.
const (
	BookingPageSize  = 10
	UserPageSize     = 10
	ProviderPageSize = 12
	ServicePageSize  = 12
	ReviewPageSize   = 15
)

// UserListQuery filters the user moderation table. Search is OR-combined
// across name, email and location; the other filters are exact-match and
// AND-combined with the search.
type UserListQuery struct {
	Search string
	Role   models.Role
	Active *bool
	Page   int
}

// ProviderListQuery filters the provider moderation table.
type ProviderListQuery struct {
	Search   string
	Category string
	Verified *bool
	Page     int
}

// BookingListQuery filters the booking moderation table.
type BookingListQuery struct {
	Search string
	Status models.BookingStatus
	Page   int
}

// ServiceListQuery filters the service moderation table.
type ServiceListQuery struct {
	Search   string
	Category string
	Page     int
}

// ReviewListQuery filters the review moderation table.
type ReviewListQuery struct {
	Search string
	Rating int
	Page   int
}

type AdminService interface {
	// Summary computes the analytics dashboard rollup.
	Summary() (*models.AnalyticsSummary, error)

	ListUsers(q UserListQuery) ([]models.User, models.PageInfo, error)
	ListProviders(q ProviderListQuery) ([]models.ProviderView, models.PageInfo, error)
	ListBookings(q BookingListQuery) ([]models.BookingView, models.PageInfo, error)
	ListServices(q ServiceListQuery) ([]models.ServiceView, models.PageInfo, error)
	ListReviews(q ReviewListQuery) ([]models.ReviewView, models.PageInfo, error)

	// GetBookingView joins a single booking for the detail modal.
	GetBookingView(id string) (*models.BookingView, error)
}

// DefaultAdminService is the production implementation. It reads whole
// collections and derives everything in memory; mutations stay with the
// domain services.
type DefaultAdminService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Services  serviceRepo.ServiceRepository
	Bookings  bookingRepo.BookingRepository
	Reviews   reviewRepo.ReviewRepository
}
