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
	"github.com/redis/go-redis/v9"

	confirmBookingHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/confirm_booking"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_available_slots"
	getSalonScheduleHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_salon_schedule"
	listProfessionalsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_professionals"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/calendar"
	appointmentsService "github.com/m04kA/SMC-SalonBookingService/internal/service/appointments"
	salonsService "github.com/m04kA/SMC-SalonBookingService/internal/service/salons"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/snapshot"
	confirmBookingUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/get_available_slots"
	listProfessionalsUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_professionals"
	"github.com/m04kA/SMC-SalonBookingService/pkg/confirmcode"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBookingService...")

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = wrappedDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	defaultZone, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking.default_timezone: %v", err)
	}

	codeGenerator, err := confirmcode.NewGenerator(cfg.Booking.ConfirmationCodeLength)
	if err != nil {
		log.Fatal("Failed to create confirmation code generator: %v", err)
	}

	// Репозитории и сервисы
	calendarRepository := calendarRepo.NewRepository(wrappedDB).WithDefaultLocation(defaultZone)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	snapshotLoader := snapshot.NewLoader(calendarRepository, appointmentRepository)

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, calendarRepository, codeGenerator, log)
	salonsSvc := salonsService.NewService(calendarRepository, log)

	// Use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		calendarRepository,
		appointmentRepository,
		snapshotLoader,
		codeGenerator,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarRepository,
		snapshotLoader,
		txMgr,
		metricsCollector,
		log,
	)
	listProfessionalsUseCase := listProfessionalsUC.NewUseCase(calendarRepository, log)

	// Handlers
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listProfessionals := listProfessionalsHandler.NewHandler(listProfessionalsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSalonSchedule := getSalonScheduleHandler.NewHandler(salonsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1/salons/{slug}").Subrouter()

	// Чтение расписания и каталога
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSalonSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{code}", getAppointment.Handle).Methods(http.MethodGet)

	// Запись на слот (с ограничением частоты, если включено)
	booking := api.PathPrefix("/appointments").Subrouter()

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		limiter := middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			cfg.RateLimit.Window(),
			cfg.RateLimit.Prefix,
			log,
		)
		booking.Use(limiter.Middleware())
		log.Info("Rate limit enabled for bookings: %d requests per %s (redis=%s)",
			cfg.RateLimit.Requests, cfg.RateLimit.Window(), cfg.Redis.Addr)
	}

	booking.HandleFunc("", confirmBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
