// File: barkbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barkbook/config"
	"barkbook/cron"
	"barkbook/database"
	clientRepoPkg "barkbook/database/repository/client"
	reportRepoPkg "barkbook/database/repository/report"
	timeslotRepoPkg "barkbook/database/repository/timeslot"
	"barkbook/handlers"
	"barkbook/middleware"
	"barkbook/routes"
	"barkbook/services/clientintake"
	"barkbook/services/notification"
	"barkbook/services/report"
	"barkbook/services/scheduling"
	"barkbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	zone, err := time.LoadLocation(config.AppConfig.SchedulingTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling timezone %q: %v", config.AppConfig.SchedulingTimezone, err)
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, photo uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	dbName := config.AppConfig.DatabaseName
	timeslotRepo := timeslotRepoPkg.NewMongoTimeslotRepo(dbName)
	clientRepo := clientRepoPkg.NewMongoClientRepo(dbName)
	reportRepo := reportRepoPkg.NewMongoReportRepo(dbName)

	// External busy-time overlay; disabled when no feed is configured.
	var busyFeed scheduling.BusyFeed
	if config.AppConfig.BusyCalendarICSURL != "" {
		busyFeed = &scheduling.ICSBusyFeed{
			URL:   config.AppConfig.BusyCalendarICSURL,
			Cache: utils.GetCacheClient(),
			TTL:   time.Duration(config.AppConfig.BusyFeedCacheTTLMin) * time.Minute,
		}
	}

	// Services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Repo:           timeslotRepo,
		Busy:           busyFeed,
		Notifier:       &notification.LogNotificationService{},
		Zone:           zone,
		HorizonWeeks:   config.AppConfig.RepeatHorizonWeeks,
		MatchTolerance: time.Duration(config.AppConfig.MatchToleranceSeconds) * time.Second,
	}
	clientService := &clientintake.DefaultClientService{
		Repo: clientRepo,
	}
	reportService := &report.DefaultReportCardService{
		Repo:    reportRepo,
		Clients: clientRepo,
		Storage: storageService,
	}

	scheduleHandler := handlers.NewScheduleHandler(schedulingService, logger)
	clientHandler := handlers.NewClientHandler(clientService, logger)
	reportHandler := handlers.NewReportCardHandler(reportService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Scheduling endpoints.
		ListTimeslotsHandler:         scheduleHandler.ListTimeslotsHandler,
		BookTimeslotHandler:          scheduleHandler.BookTimeslotHandler,
		CreateTimeslotHandler:        scheduleHandler.CreateTimeslotHandler,
		CreateRecurringSeriesHandler: scheduleHandler.CreateRecurringSeriesHandler,
		DeleteTimeslotHandler:        scheduleHandler.DeleteTimeslotHandler,
		RunAuditHandler:              scheduleHandler.RunAuditHandler,

		// Client intake endpoints.
		CreateClientHandler: clientHandler.CreateClientHandler,
		GetClientHandler:    clientHandler.GetClientHandler,
		ListClientsHandler:  clientHandler.ListClientsHandler,
		UpdateClientHandler: clientHandler.UpdateClientHandler,
		DeleteClientHandler: clientHandler.DeleteClientHandler,

		// Report card endpoints.
		CreateReportCardHandler:        reportHandler.CreateReportCardHandler,
		GetReportCardHandler:           reportHandler.GetReportCardHandler,
		ListReportCardsByClientHandler: reportHandler.ListReportCardsByClientHandler,
		UploadReportPhotoHandler:       reportHandler.UploadReportPhotoHandler,
		DeleteReportCardHandler:        reportHandler.DeleteReportCardHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background audit worker.
	cron.InitAuditWorker(schedulingService, zone)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
