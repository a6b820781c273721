package review

import (
	reviewRepo "github.com/sud2610/set-u-free-sub000/database/repository/review"
	"github.com/sud2610/set-u-free-sub000/models"
)

// CreateReviewRequest carries a new review.
type CreateReviewRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	BookingID  string `json:"bookingId"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// RatingRecomputer schedules a recomputation of a provider's denormalized
// rating aggregate. The production implementation enqueues an asynq task.
type RatingRecomputer interface {
	EnqueueRatingRecompute(providerID string) error
}

type ReviewService interface {
	CreateReview(userID string, req CreateReviewRequest) (*models.Review, error)
	GetProviderReviews(providerID string) ([]models.Review, error)
	// DeleteReview is admin-only; reviews have no edit path.
	DeleteReview(id string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo       reviewRepo.ReviewRepository
	Recomputer RatingRecomputer
}
