// File: overture/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"overture/config"
	"overture/database"
	bookingRepoPkg "overture/database/repository/booking"
	reviewRepoPkg "overture/database/repository/review"
	tariffRepoPkg "overture/database/repository/tariff"
	"overture/handlers"
	"overture/middleware"
	"overture/routes"
	"overture/services/booking"
	"overture/services/diary"
	"overture/services/report"
	"overture/services/review"
	"overture/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDiaryCache()
	utils.InitTariffCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	tariffRepo := tariffRepoPkg.NewMongoTariffRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	if err := tariffRepo.SeedDefaults(startupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed hall tariffs: %v", err)
	}
	cancelStartup()

	rateSource := tariffRepoPkg.NewRateSource(tariffRepo, config.RoomRateTable(), utils.GetTariffCacheClient())
	rateSource.WarmCache(context.Background())

	// services.
	diaryService := &diary.DefaultDiaryService{
		Repo:  bookingRepo,
		Cache: utils.GetDiaryCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Rates: rateSource,
		Diary: diaryService,
	}
	reviewService := &review.DefaultReviewService{
		Repo: reviewRepo,
	}
	reportService := &report.DefaultReportService{
		Repo: bookingRepo,
	}

	// handlers.
	handlerSet := &routes.Handlers{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Diary:   handlers.NewDiaryHandler(diaryService, logger),
		Review:  handlers.NewReviewHandler(reviewService, logger),
		Report:  handlers.NewReportHandler(reportService, logger),
	}

	routes.RegisterRoutes(router, handlerSet)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetDiaryCacheClient(), utils.GetTariffCacheClient()},
		database.MongoClient,
	)

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
