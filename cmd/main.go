package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/create_booking"
	getDateStatusHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/get_date_status"
	getSettingsHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/list_bookings"
	setDateFlagHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/set_date_flag"
	setTourOverrideHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/set_tour_override"
	upcomingToursHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/upcoming_tours"
	updateBookingStatusHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/update_booking_status"
	updateGlobalMaxHandler "github.com/mirirosen/chilik-rosenberg/internal/api/handlers/update_global_max"
	"github.com/mirirosen/chilik-rosenberg/internal/api/middleware"
	"github.com/mirirosen/chilik-rosenberg/internal/config"
	"github.com/mirirosen/chilik-rosenberg/internal/infra/storage/booking"
	settingsRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/settings"
	"github.com/mirirosen/chilik-rosenberg/internal/infra/storage/tourdate"
	"github.com/mirirosen/chilik-rosenberg/internal/migrate"
	"github.com/mirirosen/chilik-rosenberg/internal/notify"
	bookingsService "github.com/mirirosen/chilik-rosenberg/internal/service/bookings"
	settingsService "github.com/mirirosen/chilik-rosenberg/internal/service/settings"
	reserveSpotsUC "github.com/mirirosen/chilik-rosenberg/internal/usecase/reserve_spots"
	upcomingToursUC "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"
	"github.com/mirirosen/chilik-rosenberg/pkg/logger"
	"github.com/mirirosen/chilik-rosenberg/pkg/metrics"
	"github.com/mirirosen/chilik-rosenberg/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting tour booking service...")

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := migrate.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Metrics
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Repositories
	bookingRepository := booking.NewRepository(db)
	tourDateRepository := tourdate.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Notifications: queue + worker when rabbit is enabled, direct SMTP
	// otherwise, log-only when both are off
	var notifier reserveSpotsUC.Notifier = notify.NewNopNotifier(log)
	var rabbitClient *notify.RabbitClient
	var worker *notify.Worker

	if cfg.SMTP.Enabled {
		mailer := notify.NewMailer(cfg.SMTP, log)
		if cfg.Rabbit.Enabled {
			rabbitClient, err = notify.NewRabbitClient(cfg.Rabbit.URL, cfg.Rabbit.Exchange, cfg.Rabbit.Queue, log)
			if err != nil {
				log.Fatal("Failed to connect to RabbitMQ: %v", err)
			}
			defer rabbitClient.Close()

			notifier = notify.NewQueueNotifier(rabbitClient, log)
			worker = notify.NewWorker(rabbitClient, mailer, log)
			worker.Start(context.Background())
		} else {
			notifier = notify.NewDirectNotifier(mailer, log)
		}
	} else {
		log.Warn("SMTP disabled, booking notifications will not be sent")
	}

	// Usecases and services
	var reservationMetrics reserveSpotsUC.Metrics = reserveSpotsUC.NopMetrics{}
	if metricsCollector != nil {
		reservationMetrics = metricsCollector
	}

	reserveSpots := reserveSpotsUC.NewUseCase(
		bookingRepository,
		tourDateRepository,
		settingsRepository,
		txManager,
		notifier,
		reservationMetrics,
		log,
	)
	upcomingTours := upcomingToursUC.NewUseCase(
		tourDateRepository,
		settingsRepository,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		tourDateRepository,
		txManager,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		tourDateRepository,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(reserveSpots, log)
	getUpcomingTours := upcomingToursHandler.NewHandler(upcomingTours, log)
	getDateStatus := getDateStatusHandler.NewHandler(upcomingTours, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateGlobalMax := updateGlobalMaxHandler.NewHandler(settingsSvc, log)
	setTourOverride := setTourOverrideHandler.NewHandler(settingsSvc, log)
	setDateFlag := setDateFlagHandler.NewHandler(settingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/tours/upcoming", getUpcomingTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{date}", getDateStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Admin routes (X-Admin-Token)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings/global-max", updateGlobalMax.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tours/{date}/capacity", setTourOverride.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tours/{date}/blocked", setDateFlag.HandleBlocked).Methods(http.MethodPut)
	admin.HandleFunc("/tours/{date}/sold-out", setDateFlag.HandleSoldOut).Methods(http.MethodPut)
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingRef}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// HTTP server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if worker != nil {
		worker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
