package provider

import (
	"fmt"
	"math"

	"github.com/sud2610/set-u-free-sub000/models"
)

// AggregateRating computes the average rating and count over reviews.
// An empty slice yields (0, 0). The average is rounded to one decimal,
// which is the precision the profile cards display.
func AggregateRating(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, len(reviews)
}

// RecomputeRating recalculates the provider's denormalized rating and
// reviewCount from the reviews collection and stores the result. The stored
// pair is a cache of this computation, never authoritative; the nightly
// reconciliation sweep re-runs it for every provider so drift self-heals.
func (s *DefaultProviderService) RecomputeRating(providerID string) error {
	reviews, err := s.Reviews.GetByProvider(providerID)
	if err != nil {
		return fmt.Errorf("failed to load reviews for provider %s: %w", providerID, err)
	}

	rating, count := AggregateRating(reviews)
	if err := s.Repo.SetRating(providerID, rating, count); err != nil {
		return fmt.Errorf("failed to store rating for provider %s: %w", providerID, err)
	}
	return nil
}
