package admin

import (
	"fmt"
	"strings"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/listing"
)

// JoinBookingViews assembles denormalized booking rows from pre-fetched
// foreign-key targets. A missing target is a referential gap, not an error:
// its display fields fall back to the Unknown placeholder.
func JoinBookingViews(
	bookings []models.Booking,
	users map[string]models.User,
	providers map[string]models.Provider,
	services map[string]models.Service,
) []models.BookingView {
	views := make([]models.BookingView, len(bookings))
	for i, b := range bookings {
		v := models.BookingView{
			Booking:       b,
			CustomerName:  models.UnknownLabel,
			CustomerEmail: models.UnknownLabel,
			ProviderName:  models.UnknownLabel,
			ServiceTitle:  models.UnknownLabel,
		}
		if u, ok := users[b.UserID]; ok {
			v.CustomerName = u.Name
			v.CustomerEmail = u.Email
		}
		if p, ok := providers[b.ProviderID]; ok {
			v.ProviderName = p.BusinessName
		}
		if svc, ok := services[b.ServiceID]; ok {
			v.ServiceTitle = svc.Title
		}
		views[i] = v
	}
	return views
}

// FilterBookingViews applies the moderation-table predicates: the search term
// is OR-combined across customer name/email, provider name and service title,
// and AND-combined with the exact-match status filter.
func FilterBookingViews(views []models.BookingView, q BookingListQuery) []models.BookingView {
	out := make([]models.BookingView, 0, len(views))
	for _, v := range views {
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		if !listing.MatchesSearch(q.Search, v.CustomerName, v.CustomerEmail, v.ProviderName, v.ServiceTitle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ListBookings fetches the whole booking collection, joins the foreign keys
// with batched multi-gets, filters and paginates.
func (s *DefaultAdminService) ListBookings(q BookingListQuery) ([]models.BookingView, models.PageInfo, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	views, err := s.joinBookings(bookings)
	if err != nil {
		return nil, models.PageInfo{}, err
	}

	filtered := FilterBookingViews(views, q)
	lo, hi, info := listing.Page(len(filtered), q.Page, BookingPageSize)
	return filtered[lo:hi], info, nil
}

// GetBookingView joins a single booking for the detail modal.
func (s *DefaultAdminService) GetBookingView(id string) (*models.BookingView, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	views, err := s.joinBookings([]models.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *DefaultAdminService) joinBookings(bookings []models.Booking) ([]models.BookingView, error) {
	userIDs := make([]string, 0, len(bookings))
	providerIDs := make([]string, 0, len(bookings))
	serviceIDs := make([]string, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.UserID)
		providerIDs = append(providerIDs, b.ProviderID)
		serviceIDs = append(serviceIDs, b.ServiceID)
	}

	users, err := s.Users.GetManyByIDs(dedupe(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load booking customers: %w", err)
	}
	providers, err := s.Providers.GetManyByIDs(dedupe(providerIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load booking providers: %w", err)
	}
	services, err := s.Services.GetManyByIDs(dedupe(serviceIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load booking services: %w", err)
	}

	return JoinBookingViews(bookings, userMap(users), providerMap(providers), serviceMap(services)), nil
}

// ListUsers filters and paginates the user moderation table.
func (s *DefaultAdminService) ListUsers(q UserListQuery) ([]models.User, models.PageInfo, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load users: %w", err)
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		if q.Active != nil && u.Active != *q.Active {
			continue
		}
		if !listing.MatchesSearch(q.Search, u.Name, u.Email, u.Location) {
			continue
		}
		filtered = append(filtered, u)
	}

	lo, hi, info := listing.Page(len(filtered), q.Page, UserPageSize)
	return filtered[lo:hi], info, nil
}

// ListProviders joins each provider to its owning user account, filters and
// paginates.
func (s *DefaultAdminService) ListProviders(q ProviderListQuery) ([]models.ProviderView, models.PageInfo, error) {
	providers, err := s.Providers.GetAll()
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load providers: %w", err)
	}

	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = p.ID
	}
	owners, err := s.Users.GetManyByIDs(dedupe(ids))
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load provider owners: %w", err)
	}
	ownersByID := userMap(owners)

	filtered := make([]models.ProviderView, 0, len(providers))
	for _, p := range providers {
		if q.Verified != nil && p.Verified != *q.Verified {
			continue
		}
		if q.Category != "" && !containsString(p.Categories, q.Category) {
			continue
		}
		v := models.ProviderView{
			Provider:   p,
			OwnerName:  models.UnknownLabel,
			OwnerEmail: models.UnknownLabel,
		}
		if owner, ok := ownersByID[p.ID]; ok {
			v.OwnerName = owner.Name
			v.OwnerEmail = owner.Email
		}
		if !listing.MatchesSearch(q.Search, p.BusinessName, p.City, v.OwnerName, v.OwnerEmail) {
			continue
		}
		filtered = append(filtered, v)
	}

	lo, hi, info := listing.Page(len(filtered), q.Page, ProviderPageSize)
	return filtered[lo:hi], info, nil
}

// ListServices joins each service to its provider, filters and paginates.
func (s *DefaultAdminService) ListServices(q ServiceListQuery) ([]models.ServiceView, models.PageInfo, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load services: %w", err)
	}

	ids := make([]string, len(services))
	for i, svc := range services {
		ids[i] = svc.ProviderID
	}
	providers, err := s.Providers.GetManyByIDs(dedupe(ids))
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load service providers: %w", err)
	}
	providersByID := providerMap(providers)

	filtered := make([]models.ServiceView, 0, len(services))
	for _, svc := range services {
		if q.Category != "" && svc.Category != q.Category {
			continue
		}
		v := models.ServiceView{Service: svc, ProviderName: models.UnknownLabel}
		if p, ok := providersByID[svc.ProviderID]; ok {
			v.ProviderName = p.BusinessName
		}
		if !listing.MatchesSearch(q.Search, svc.Title, svc.Category, v.ProviderName) {
			continue
		}
		filtered = append(filtered, v)
	}

	lo, hi, info := listing.Page(len(filtered), q.Page, ServicePageSize)
	return filtered[lo:hi], info, nil
}

// ListReviews joins each review to its author and provider, filters and
// paginates.
func (s *DefaultAdminService) ListReviews(q ReviewListQuery) ([]models.ReviewView, models.PageInfo, error) {
	reviews, err := s.Reviews.GetAll()
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load reviews: %w", err)
	}

	userIDs := make([]string, 0, len(reviews))
	providerIDs := make([]string, 0, len(reviews))
	for _, rv := range reviews {
		userIDs = append(userIDs, rv.UserID)
		providerIDs = append(providerIDs, rv.ProviderID)
	}
	users, err := s.Users.GetManyByIDs(dedupe(userIDs))
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load review authors: %w", err)
	}
	providers, err := s.Providers.GetManyByIDs(dedupe(providerIDs))
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("failed to load review providers: %w", err)
	}
	usersByID := userMap(users)
	providersByID := providerMap(providers)

	filtered := make([]models.ReviewView, 0, len(reviews))
	for _, rv := range reviews {
		if q.Rating != 0 && rv.Rating != q.Rating {
			continue
		}
		v := models.ReviewView{
			Review:       rv,
			ReviewerName: models.UnknownLabel,
			ProviderName: models.UnknownLabel,
		}
		if u, ok := usersByID[rv.UserID]; ok {
			v.ReviewerName = u.Name
		}
		if p, ok := providersByID[rv.ProviderID]; ok {
			v.ProviderName = p.BusinessName
		}
		if !listing.MatchesSearch(q.Search, v.ReviewerName, v.ProviderName, rv.Comment) {
			continue
		}
		filtered = append(filtered, v)
	}

	lo, hi, info := listing.Page(len(filtered), q.Page, ReviewPageSize)
	return filtered[lo:hi], info, nil
}

func userMap(users []models.User) map[string]models.User {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

func providerMap(providers []models.Provider) map[string]models.Provider {
	m := make(map[string]models.Provider, len(providers))
	for _, p := range providers {
		m[p.ID] = p
	}
	return m
}

func serviceMap(services []models.Service) map[string]models.Service {
	m := make(map[string]models.Service, len(services))
	for _, svc := range services {
		m[svc.ID] = svc
	}
	return m
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
