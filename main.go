package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sud2610/set-u-free-sub000/config"
	"github.com/sud2610/set-u-free-sub000/cron"
	"github.com/sud2610/set-u-free-sub000/database"
	bookingRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/booking"
	providerRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/provider"
	referenceRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/reference"
	reviewRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/review"
	serviceRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/service"
	userRepoPkg "github.com/sud2610/set-u-free-sub000/database/repository/user"
	"github.com/sud2610/set-u-free-sub000/handlers"
	"github.com/sud2610/set-u-free-sub000/middleware"
	"github.com/sud2610/set-u-free-sub000/routes"
	"github.com/sud2610/set-u-free-sub000/services/admin"
	"github.com/sud2610/set-u-free-sub000/services/booking"
	"github.com/sud2610/set-u-free-sub000/services/catalog"
	"github.com/sud2610/set-u-free-sub000/services/provider"
	"github.com/sud2610/set-u-free-sub000/services/review"
	"github.com/sud2610/set-u-free-sub000/services/user"
	"github.com/sud2610/set-u-free-sub000/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorage, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary not configured, image uploads disabled: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	referenceRepo := referenceRepoPkg.NewMongoReferenceRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:         userRepo,
		ProviderRepo: providerRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo:    providerRepo,
		Reviews: reviewRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:       reviewRepo,
		Recomputer: cron.NewEnqueuer(),
	}
	adminService := &admin.DefaultAdminService{
		Users:     userRepo,
		Providers: providerRepo,
		Services:  serviceRepo,
		Bookings:  bookingRepo,
		Reviews:   reviewRepo,
	}

	// Background rating recomputation (asynq worker + nightly sweep).
	cron.InitRatingWorker(providerService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		User:     handlers.NewUserHandler(userService),
		Provider: handlers.NewProviderHandler(providerService, catalogService, reviewService),
		Service:  handlers.NewServiceHandler(catalogService),
		Booking:  handlers.NewBookingHandler(bookingService, adminService),
		Review:   handlers.NewReviewHandler(reviewService),
		Meta:     handlers.NewMetaHandler(referenceRepo),
		Admin:    handlers.NewAdminHandler(adminService, userService, providerService, bookingService, catalogService, reviewService),
		Storage:  handlers.NewStorageHandler(cloudinaryStorage),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
