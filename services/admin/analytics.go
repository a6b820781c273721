package admin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sud2610/set-u-free-sub000/models"

	"golang.org/x/sync/errgroup"
)

// Summary fetches every collection and derives the dashboard rollup in
// memory. The fan-out is bounded by the fixed set of collections.
func (s *DefaultAdminService) Summary() (*models.AnalyticsSummary, error) {
	var (
		users     []models.User
		providers []models.Provider
		services  []models.Service
		bookings  []models.Booking
		reviews   []models.Review
	)

	var g errgroup.Group
	g.Go(func() (err error) { users, err = s.Users.GetAll(); return })
	g.Go(func() (err error) { providers, err = s.Providers.GetAll(); return })
	g.Go(func() (err error) { services, err = s.Services.GetAll(); return })
	g.Go(func() (err error) { bookings, err = s.Bookings.GetAll(); return })
	g.Go(func() (err error) { reviews, err = s.Reviews.GetAll(); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load analytics collections: %w", err)
	}

	return BuildSummary(users, providers, services, bookings, reviews, time.Now()), nil
}

// BuildSummary derives the rollup from already-fetched collections.
func BuildSummary(
	users []models.User,
	providers []models.Provider,
	services []models.Service,
	bookings []models.Booking,
	reviews []models.Review,
	now time.Time,
) *models.AnalyticsSummary {
	summary := &models.AnalyticsSummary{
		TotalUsers:     len(users),
		TotalProviders: len(providers),
		TotalServices:  len(services),
		TotalBookings:  len(bookings),
		TotalReviews:   len(reviews),
	}

	summary.UserGrowth = MonthlyGrowth(creationTimes(len(users), func(i int) time.Time { return users[i].CreatedAt }), now)
	summary.ProviderGrowth = MonthlyGrowth(creationTimes(len(providers), func(i int) time.Time { return providers[i].CreatedAt }), now)
	summary.BookingGrowth = MonthlyGrowth(creationTimes(len(bookings), func(i int) time.Time { return bookings[i].CreatedAt }), now)

	statuses := make([]string, len(bookings))
	completed := 0
	for i, b := range bookings {
		statuses[i] = string(b.Status)
		if b.Status == models.BookingStatusCompleted {
			completed++
		}
	}
	summary.BookingsByStatus = GroupCount(statuses)
	if len(bookings) > 0 {
		summary.CompletedPct = float64(completed) / float64(len(bookings)) * 100
	}

	categories := make([]string, len(services))
	for i, svc := range services {
		categories[i] = svc.Category
	}
	summary.TopCategories = GroupCount(categories)

	ratings := make([]string, len(reviews))
	ratingSum := 0
	for i, rv := range reviews {
		ratings[i] = strconv.Itoa(rv.Rating)
		ratingSum += rv.Rating
	}
	summary.RatingDistribution = GroupCount(ratings)
	if len(reviews) > 0 {
		summary.AverageRating = float64(ratingSum) / float64(len(reviews))
	}

	return summary
}

func creationTimes(n int, at func(int) time.Time) []time.Time {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = at(i)
	}
	return times
}
