package admin

import (
	"sort"
	"time"

	"github.com/sud2610/set-u-free-sub000/models"
)

// GrowthPct computes month-over-month growth as a percentage. When the
// previous month had nothing to compare against the result is pinned at
// exactly 100 (a policy, not the general percentage-change formula).
func GrowthPct(thisMonth, lastMonth int) float64 {
	if lastMonth == 0 {
		return 100
	}
	return float64(thisMonth-lastMonth) / float64(lastMonth) * 100
}

// MonthlyGrowth partitions creation timestamps into this calendar month and
// the previous one, relative to now, and derives the growth stat.
func MonthlyGrowth(createdAt []time.Time, now time.Time) models.GrowthStat {
	thisStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := thisStart.AddDate(0, -1, 0)

	var thisMonth, lastMonth int
	for _, t := range createdAt {
		switch {
		case !t.Before(thisStart):
			thisMonth++
		case !t.Before(lastStart):
			lastMonth++
		}
	}

	return models.GrowthStat{
		ThisMonth: thisMonth,
		LastMonth: lastMonth,
		GrowthPct: GrowthPct(thisMonth, lastMonth),
	}
}

// GroupCount counts exact-match occurrences of each key and returns the
// buckets sorted strictly descending by count. Ties keep the order in which
// the key was first encountered.
func GroupCount(keys []string) []models.CountBucket {
	counts := make(map[string]int, len(keys))
	order := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	buckets := make([]models.CountBucket, 0, len(order))
	for _, k := range order {
		buckets = append(buckets, models.CountBucket{Key: k, Count: counts[k]})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	return buckets
}
