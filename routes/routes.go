package routes

import (
	"net/http"
	"time"

	"github.com/sud2610/set-u-free-sub000/handlers"
	"github.com/sud2610/set-u-free-sub000/middleware"
	"github.com/sud2610/set-u-free-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration, authentication and profile
// endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)
		api.POST("/firebase", hb.User.FirebaseSignInHandler)

		// Protected routes (require authentication)
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.User.SignOutHandler)
		api.GET("/me", hb.User.GetMeHandler)
		api.GET("/:id", hb.User.GetUserByIDHandler)
		api.PUT("/:id", hb.User.UpdateUserHandler)
		api.PUT("/:id/password", hb.User.UpdatePasswordHandler)
		api.DELETE("/:id", hb.User.DeleteUserHandler)
	}
}

// RegisterProviderRoutes registers the public provider directory plus the
// provider's own profile management.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.Provider.SearchProvidersHandler)
		api.GET("/:id", hb.Provider.GetProviderByIDHandler)
		api.GET("/:id/services", hb.Provider.GetProviderServicesHandler)
		api.GET("/:id/reviews", hb.Provider.GetProviderReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
		protected.PATCH("/:id", hb.Provider.UpdateProviderHandler)
	}
}

// RegisterServiceRoutes registers the public catalog plus offering
// management for providers.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Service.ListServicesHandler)
		api.GET("/:id", hb.Service.GetServiceHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
		protected.POST("", hb.Service.CreateServiceHandler)
		protected.PATCH("/:id", hb.Service.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Service.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers appointment endpoints. All of them require
// a session; per-role rules live in the booking service.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.GetMyBookingsHandler)
		api.GET("/provider", middleware.RequireRole(models.RoleProvider), hb.Booking.GetProviderBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id/status", hb.Booking.UpdateBookingStatusHandler)
	}
}

// RegisterReviewRoutes registers review submission.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleCustomer))
		api.POST("", hb.Review.CreateReviewHandler)
	}
}

// RegisterMetaRoutes registers the public city/category reference lists.
func RegisterMetaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meta")
	{
		api.GET("/cities", hb.Meta.GetCitiesHandler)
		api.GET("/categories", hb.Meta.GetCategoriesHandler)
	}
}

// RegisterStorageRoutes registers image uploads and admin asset cleanup.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/upload", hb.Storage.UploadImageHandler)
		api.DELETE("", middleware.RequireRole(models.RoleAdmin), hb.Storage.DeleteImageHandler)
	}
}

// RegisterAdminRoutes registers the back-office surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))

		adminGroup.GET("/analytics", hb.Admin.GetAnalyticsHandler)

		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.PUT("/users/:id", hb.Admin.UpdateUserHandler)
		adminGroup.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		adminGroup.GET("/providers", hb.Admin.ListProvidersHandler)
		adminGroup.PUT("/providers/:id/verify", hb.Admin.VerifyProviderHandler)
		adminGroup.DELETE("/providers/:id", hb.Admin.DeleteProviderHandler)

		adminGroup.GET("/bookings", hb.Admin.ListBookingsHandler)
		adminGroup.GET("/bookings/:id", hb.Admin.GetBookingViewHandler)
		adminGroup.PUT("/bookings/:id/status", hb.Admin.UpdateBookingStatusHandler)
		adminGroup.DELETE("/bookings/:id", hb.Admin.DeleteBookingHandler)

		adminGroup.GET("/services", hb.Admin.ListServicesHandler)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteServiceHandler)

		adminGroup.GET("/reviews", hb.Admin.ListReviewsHandler)
		adminGroup.DELETE("/reviews/:id", hb.Admin.DeleteReviewHandler)

		adminGroup.POST("/cities", hb.Meta.CreateCityHandler)
		adminGroup.DELETE("/cities/:id", hb.Meta.DeleteCityHandler)
		adminGroup.POST("/categories", hb.Meta.CreateCategoryHandler)
		adminGroup.DELETE("/categories/:id", hb.Meta.DeleteCategoryHandler)
	}
}

// RegisterHealthRoute registers the liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterMetaRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
