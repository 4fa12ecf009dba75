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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/check_driver_availability"
	checkInHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/check_out"
	createBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/delete_booking"
	editBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/edit_booking"
	extendBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/extend_booking"
	getBookingHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_booking"
	getBranchBookingsHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_branch_bookings"
	getDriverBookingsHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_driver_bookings"
	getPolicyHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_organization_policy"
	getSelectableDatesHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_selectable_dates"
	getSelectableTimesHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/get_selectable_times"
	logIncidentHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/log_incident"
	startSessionHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/start_session"
	updateSettingsHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/update_organization_settings"
	updateRecurrenceHandler "github.com/m04kA/SMC-FleetBookingService/internal/api/handlers/update_recurrence"
	"github.com/m04kA/SMC-FleetBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FleetBookingService/internal/config"
	"github.com/m04kA/SMC-FleetBookingService/internal/infra/session"
	bookingRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/booking"
	policyRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/policy"
	vehicleRepo "github.com/m04kA/SMC-FleetBookingService/internal/infra/storage/vehicle"
	branchServiceClient "github.com/m04kA/SMC-FleetBookingService/internal/integrations/branchservice"
	"github.com/m04kA/SMC-FleetBookingService/internal/integrations/events"
	bookingsService "github.com/m04kA/SMC-FleetBookingService/internal/service/bookings"
	policyService "github.com/m04kA/SMC-FleetBookingService/internal/service/policy"
	checkAvailabilityUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_driver_availability"
	checkInUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/check_out"
	createBookingUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/create_booking"
	editBookingUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/edit_booking"
	extendBookingUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/extend_booking"
	getSelectableDatesUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_dates"
	getSelectableTimesUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/get_selectable_times"
	logIncidentUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/log_incident"
	startSessionUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/start_session"
	updateRecurrenceUC "github.com/m04kA/SMC-FleetBookingService/internal/usecase/update_recurrence"
	"github.com/m04kA/SMC-FleetBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetBookingService/pkg/logger"
	"github.com/m04kA/SMC-FleetBookingService/pkg/metrics"
	"github.com/m04kA/SMC-FleetBookingService/pkg/txmanager"
)

// publisher общий интерфейс kafka producer и заглушки
type publisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
	Close() error
}

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

	log.Info("Starting SMC-FleetBookingService...")

	// Метрики (если включены). При nil обёртка БД работает как прозрачный прокси
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.Wrap(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis для снимков сессий бронирования
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, session_ttl=%dm)", cfg.Redis.Addr, cfg.Redis.SessionTTL)

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Redis.SessionTTL)*time.Minute)

	// События жизненного цикла
	var eventPublisher publisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		producer, err := events.NewProducer(cfg.Events.Brokers, cfg.Events.Topic, log)
		if err != nil {
			log.Fatal("Failed to create kafka producer: %v", err)
		}
		eventPublisher = producer
		log.Info("Kafka events enabled (topic=%s, brokers=%v)", cfg.Events.Topic, cfg.Events.Brokers)
	}
	defer eventPublisher.Close()

	// Интеграционные клиенты
	branchClient := branchServiceClient.NewClient(
		cfg.BranchService.URL,
		time.Duration(cfg.BranchService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BranchService=%s timeout=%ds)",
		cfg.BranchService.URL, cfg.BranchService.Timeout)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB)
	vehicleRepository := vehicleRepo.NewRepository(wrappedDB)

	// Сервисы
	policySvc := policyService.NewService(policyRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, eventPublisher, txMgr, log)

	// Use cases
	startSessionUseCase := startSessionUC.NewUseCase(branchClient, policySvc, sessionStore, log)
	getSelectableDatesUseCase := getSelectableDatesUC.NewUseCase(sessionStore, log)
	getSelectableTimesUseCase := getSelectableTimesUC.NewUseCase(sessionStore, log)
	updateRecurrenceUseCase := updateRecurrenceUC.NewUseCase(log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		sessionStore,
		eventPublisher,
		txMgr,
		log,
	)
	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		sessionStore,
		eventPublisher,
		txMgr,
		log,
	)
	extendBookingUseCase := extendBookingUC.NewUseCase(bookingRepository, policySvc, eventPublisher, txMgr, log)
	checkOutUseCase := checkOutUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		policySvc,
		eventPublisher,
		txMgr,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		policySvc,
		eventPublisher,
		txMgr,
		log,
	)
	logIncidentUseCase := logIncidentUC.NewUseCase(
		vehicleRepository,
		bookingRepository,
		policySvc,
		eventPublisher,
		txMgr,
		log,
	)

	// Handlers
	startSession := startSessionHandler.NewHandler(startSessionUseCase, log)
	getSelectableDates := getSelectableDatesHandler.NewHandler(getSelectableDatesUseCase, log)
	getSelectableTimes := getSelectableTimesHandler.NewHandler(getSelectableTimesUseCase, log)
	updateRecurrence := updateRecurrenceHandler.NewHandler(updateRecurrenceUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	logIncident := logIncidentHandler.NewHandler(logIncidentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getDriverBookings := getDriverBookingsHandler.NewHandler(bookingSvc, log)
	getBranchBookings := getBranchBookingsHandler.NewHandler(bookingSvc, log)
	getPolicy := getPolicyHandler.NewHandler(policySvc, log)
	updateSettings := updateSettingsHandler.NewHandler(policySvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Политика организации для экранов бронирования
	api.HandleFunc("/organizations/{organizationId}/policy", getPolicy.Handle).Methods(http.MethodGet)

	// Переходы рекуррентности не зависят от пользователя
	api.HandleFunc("/recurrence", updateRecurrence.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессия бронирования ---
	protected.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/dates", getSelectableDates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/times", getSelectableTimes.Handle).Methods(http.MethodGet)

	// --- Водитель ---
	protected.HandleFunc("/drivers/{driverId}/availability", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drivers/{driverId}/bookings", getDriverBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/extend", extendBooking.Handle).Methods(http.MethodPatch)

	// --- Выдача и возврат автомобиля (с подтверждением отклонения одометра) ---
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-out/confirm", checkOut.HandleConfirm).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-in/confirm", checkIn.HandleConfirm).Methods(http.MethodPost)

	// --- Инциденты ---
	protected.HandleFunc("/vehicles/{vehicleId}/incidents", logIncident.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{vehicleId}/incidents/confirm", logIncident.HandleConfirm).Methods(http.MethodPost)

	// --- Управление организацией ---
	protected.HandleFunc("/branches/{branchId}/bookings", getBranchBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/organizations/{organizationId}/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
