package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/services/review"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission. Reads live on the provider
// surface, deletion on the admin surface.
type ReviewHandler struct {
	Service review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// CreateReviewHandler handles POST /api/reviews. The author id comes from
// the session.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload: "+err.Error())
		return
	}
	r, err := h.Service.CreateReview(actorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}
