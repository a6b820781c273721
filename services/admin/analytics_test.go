package admin

import (
	"testing"
	"time"

	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)

	users := []models.User{
		{ID: "u1", CreatedAt: thisMonth},
		{ID: "u2", CreatedAt: lastMonth},
	}
	providers := []models.Provider{
		{ID: "p1", CreatedAt: lastMonth},
	}
	services := []models.Service{
		{ID: "s1", Category: "plumbing"},
		{ID: "s2", Category: "plumbing"},
		{ID: "s3", Category: "cleaning"},
	}
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingStatusCompleted, CreatedAt: thisMonth},
		{ID: "b2", Status: models.BookingStatusPending, CreatedAt: thisMonth},
		{ID: "b3", Status: models.BookingStatusCompleted, CreatedAt: lastMonth},
		{ID: "b4", Status: models.BookingStatusCancelled, CreatedAt: lastMonth},
	}
	reviews := []models.Review{
		{ID: "r1", Rating: 5},
		{ID: "r2", Rating: 4},
		{ID: "r3", Rating: 5},
	}

	got := BuildSummary(users, providers, services, bookings, reviews, now)

	assert.Equal(t, 2, got.TotalUsers)
	assert.Equal(t, 1, got.TotalProviders)
	assert.Equal(t, 3, got.TotalServices)
	assert.Equal(t, 4, got.TotalBookings)
	assert.Equal(t, 3, got.TotalReviews)

	assert.Equal(t, models.GrowthStat{ThisMonth: 1, LastMonth: 1, GrowthPct: 0}, got.UserGrowth)
	assert.Equal(t, models.GrowthStat{ThisMonth: 0, LastMonth: 1, GrowthPct: -100}, got.ProviderGrowth)
	assert.Equal(t, models.GrowthStat{ThisMonth: 2, LastMonth: 2, GrowthPct: 0}, got.BookingGrowth)

	assert.Equal(t, float64(50), got.CompletedPct)
	require.NotEmpty(t, got.BookingsByStatus)
	assert.Equal(t, models.CountBucket{Key: "completed", Count: 2}, got.BookingsByStatus[0])

	assert.Equal(t, []models.CountBucket{
		{Key: "plumbing", Count: 2},
		{Key: "cleaning", Count: 1},
	}, got.TopCategories)

	assert.Equal(t, models.CountBucket{Key: "5", Count: 2}, got.RatingDistribution[0])
	assert.InDelta(t, 4.67, got.AverageRating, 0.01)
}

func TestBuildSummaryEmpty(t *testing.T) {
	got := BuildSummary(nil, nil, nil, nil, nil, time.Now())
	assert.Zero(t, got.TotalBookings)
	assert.Zero(t, got.CompletedPct)
	assert.Zero(t, got.AverageRating)
	assert.Empty(t, got.TopCategories)
}
