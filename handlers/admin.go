package handlers

import (
	"net/http"

	"github.com/sud2610/set-u-free-sub000/models"
	"github.com/sud2610/set-u-free-sub000/services/admin"
	"github.com/sud2610/set-u-free-sub000/services/booking"
	"github.com/sud2610/set-u-free-sub000/services/catalog"
	"github.com/sud2610/set-u-free-sub000/services/provider"
	"github.com/sud2610/set-u-free-sub000/services/review"
	"github.com/sud2610/set-u-free-sub000/services/user"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the back-office: the analytics dashboard, the five
// moderation tables and their mutations. Every route behind it requires the
// admin role.
type AdminHandler struct {
	Reports   admin.AdminService
	Users     user.UserService
	Providers provider.ProviderService
	Bookings  booking.BookingService
	Catalog   catalog.CatalogService
	Reviews   review.ReviewService
}

func NewAdminHandler(
	reports admin.AdminService,
	users user.UserService,
	providers provider.ProviderService,
	bookings booking.BookingService,
	cat catalog.CatalogService,
	reviews review.ReviewService,
) *AdminHandler {
	return &AdminHandler{
		Reports:   reports,
		Users:     users,
		Providers: providers,
		Bookings:  bookings,
		Catalog:   cat,
		Reviews:   reviews,
	}
}

// GetAnalyticsHandler handles GET /api/admin/analytics.
func (h *AdminHandler) GetAnalyticsHandler(c *gin.Context) {
	summary, err := h.Reports.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	q := admin.UserListQuery{
		Search: c.Query("search"),
		Role:   models.Role(c.Query("role")),
		Active: queryBool(c, "active"),
		Page:   queryInt(c, "page", 1),
	}
	users, info, err := h.Reports.ListUsers(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"users": users, "pagination": info})
}

// UpdateUserHandler handles PUT /api/admin/users/:id (role and active flips).
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}
	u, err := h.Users.UpdateUser(c.Param("id"), upd)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, u)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "User deleted"})
}

// ListProvidersHandler handles GET /api/admin/providers.
func (h *AdminHandler) ListProvidersHandler(c *gin.Context) {
	q := admin.ProviderListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Verified: queryBool(c, "verified"),
		Page:     queryInt(c, "page", 1),
	}
	providers, info, err := h.Reports.ListProviders(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"providers": providers, "pagination": info})
}

// VerifyProviderHandler handles PUT /api/admin/providers/:id/verify.
func (h *AdminHandler) VerifyProviderHandler(c *gin.Context) {
	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "verified is required")
		return
	}
	p, err := h.Providers.SetVerified(c.Param("id"), *req.Verified)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, p)
}

// DeleteProviderHandler handles DELETE /api/admin/providers/:id.
func (h *AdminHandler) DeleteProviderHandler(c *gin.Context) {
	if err := h.Providers.DeleteProvider(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Provider deleted"})
}

// ListBookingsHandler handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	q := admin.BookingListQuery{
		Search: c.Query("search"),
		Status: models.BookingStatus(c.Query("status")),
		Page:   queryInt(c, "page", 1),
	}
	bookings, info, err := h.Reports.ListBookings(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"bookings": bookings, "pagination": info})
}

// GetBookingViewHandler handles GET /api/admin/bookings/:id.
func (h *AdminHandler) GetBookingViewHandler(c *gin.Context) {
	view, err := h.Reports.GetBookingView(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}

// UpdateBookingStatusHandler handles PUT /api/admin/bookings/:id/status.
// Admin actors may force any status from any state.
func (h *AdminHandler) UpdateBookingStatusHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Param("id"), req.Status, booking.Actor{ID: actorID, Role: models.RoleAdmin})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

// DeleteBookingHandler handles DELETE /api/admin/bookings/:id.
func (h *AdminHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Bookings.DeleteBooking(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking deleted"})
}

// ListServicesHandler handles GET /api/admin/services.
func (h *AdminHandler) ListServicesHandler(c *gin.Context) {
	q := admin.ServiceListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     queryInt(c, "page", 1),
	}
	services, info, err := h.Reports.ListServices(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"services": services, "pagination": info})
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id (force-delete,
// ownership bypassed).
func (h *AdminHandler) DeleteServiceHandler(c *gin.Context) {
	actorID, _ := currentActor(c)
	if err := h.Catalog.DeleteService(c.Param("id"), actorID, true); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListReviewsHandler handles GET /api/admin/reviews.
func (h *AdminHandler) ListReviewsHandler(c *gin.Context) {
	q := admin.ReviewListQuery{
		Search: c.Query("search"),
		Rating: queryInt(c, "rating", 0),
		Page:   queryInt(c, "page", 1),
	}
	reviews, info, err := h.Reports.ListReviews(q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reviews": reviews, "pagination": info})
}

// DeleteReviewHandler handles DELETE /api/admin/reviews/:id. The provider's
// rating aggregate is recomputed afterwards.
func (h *AdminHandler) DeleteReviewHandler(c *gin.Context) {
	if err := h.Reviews.DeleteReview(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Review deleted"})
}
