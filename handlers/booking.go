package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/admin"
	"github.com/sud2610/set-u-free-sub000/services/booking"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes appointment creation and the customer/provider
// booking lists. Joined detail views come from the reporting service.
type BookingHandler struct {
	Service booking.BookingService
	Views   admin.AdminService
}

func NewBookingHandler(svc booking.BookingService, views admin.AdminService) *BookingHandler {
	return &BookingHandler{Service: svc, Views: views}
}

// CreateBookingHandler handles POST /api/bookings. The customer id comes
// from the session.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}
	b, err := h.Service.CreateBooking(actorID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, b)
}

// GetMyBookingsHandler handles GET /api/bookings (the caller's own bookings
// as a customer).
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	bookings, err := h.Service.GetUserBookings(actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetProviderBookingsHandler handles GET /api/bookings/provider (the
// caller's incoming bookings as a provider).
func (h *BookingHandler) GetProviderBookingsHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	bookings, err := h.Service.GetProviderBookings(actorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id and returns the joined
// view. Only the booking's customer, its provider, or an admin may read it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actorID, role := currentActor(c)
	view, err := h.Views.GetBookingView(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if role != models.RoleAdmin && view.UserID != actorID && view.ProviderID != actorID {
		utils.JSONError(c, http.StatusForbidden, "Not your booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status. The
// transition table and per-role rules live in the service.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	actorID, role := currentActor(c)
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	b, err := h.Service.UpdateStatus(c.Param("id"), req.Status, booking.Actor{ID: actorID, Role: role})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}
