package review

import (
	"fmt"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReview inserts a review and schedules a recomputation of the
// provider's rating aggregate.
func (s *DefaultReviewService) CreateReview(userID string, req CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	rv := &models.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		ProviderID: req.ProviderID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.Repo.Create(rv); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.scheduleRecompute(req.ProviderID)
	return rv, nil
}

// GetProviderReviews retrieves a provider's reviews, newest first.
func (s *DefaultReviewService) GetProviderReviews(providerID string) ([]models.Review, error) {
	return s.Repo.GetByProvider(providerID)
}

// DeleteReview removes a review and schedules a recomputation for the
// provider it pointed at.
func (s *DefaultReviewService) DeleteReview(id string) error {
	rv, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	s.scheduleRecompute(rv.ProviderID)
	return nil
}

// scheduleRecompute is best-effort: the nightly reconciliation sweep covers
// any enqueue failure.
func (s *DefaultReviewService) scheduleRecompute(providerID string) {
	if s.Recomputer == nil {
		return
	}
	if err := s.Recomputer.EnqueueRatingRecompute(providerID); err != nil {
		utils.GetLogger().Error("Failed to enqueue rating recompute",
			zap.String("providerID", providerID), zap.Error(err))
	}
}
