package admin

import (
	"testing"
	"time"

	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPct(t *testing.T) {
	assert.Equal(t, float64(100), GrowthPct(5, 0), "empty previous month pins growth at 100")
	assert.Equal(t, float64(100), GrowthPct(0, 0))
	assert.Equal(t, float64(50), GrowthPct(15, 10))
	assert.Equal(t, float64(-50), GrowthPct(5, 10))
	assert.Equal(t, float64(0), GrowthPct(10, 10))
}

func TestMonthlyGrowth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	stamps := []time.Time{
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),  // first instant of this month
		time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC), // this month
		time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), // last month
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),     // first instant of last month
		time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC),  // older, ignored
	}

	got := MonthlyGrowth(stamps, now)
	assert.Equal(t, 2, got.ThisMonth)
	assert.Equal(t, 2, got.LastMonth)
	assert.Equal(t, float64(0), got.GrowthPct)
}

func TestMonthlyGrowthEmptyLastMonth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := MonthlyGrowth([]time.Time{now}, now)
	assert.Equal(t, 1, got.ThisMonth)
	assert.Equal(t, 0, got.LastMonth)
	assert.Equal(t, float64(100), got.GrowthPct)
}

func TestGroupCount(t *testing.T) {
	got := GroupCount([]string{"plumbing", "cleaning", "plumbing", "tutoring", "cleaning", "plumbing"})
	assert.Equal(t, []models.CountBucket{
		{Key: "plumbing", Count: 3},
		{Key: "cleaning", Count: 2},
		{Key: "tutoring", Count: 1},
	}, got)
}

func TestGroupCountTiesKeepFirstEncounteredOrder(t *testing.T) {
	got := GroupCount([]string{"b", "a", "b", "a", "c"})
	assert.Equal(t, []models.CountBucket{
		{Key: "b", Count: 2},
		{Key: "a", Count: 2},
		{Key: "c", Count: 1},
	}, got)
}

func TestGroupCountEmpty(t *testing.T) {
	assert.Empty(t, GroupCount(nil))
}
