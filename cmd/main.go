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

	advanceStepHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/advance_step"
	authLogoutHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/auth_logout"
	authSessionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/auth_session"
	createSessionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_session"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getServiceGroupsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_service_groups"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	getSessionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_session"
	resetSessionHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reset_session"
	retreatStepHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/retreat_step"
	selectCategoryHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/select_category"
	selectDateHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/select_date"
	selectServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/select_service"
	selectTimeHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/select_time"
	setStepHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/set_step"
	submitBookingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/infra/sessionstore"
	authServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/authservice"
	bookingServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/bookingservice"
	scheduleServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/scheduleservice"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	selectionService "github.com/m04kA/SMC-SalonService/internal/service/selection"
	resolveAvailabilityUC "github.com/m04kA/SMC-SalonService/internal/usecase/resolve_availability"
	submitBookingUC "github.com/m04kA/SMC-SalonService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных каталога
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ScheduleService=%s, BookingService=%s, AuthService=%s)",
		cfg.ScheduleService.URL, cfg.BookingService.URL, cfg.AuthService.URL)

	// Инициализируем репозиторий каталога
	catalogRepository := catalogRepo.NewRepository(db)

	// Инициализируем хранилище сессий бронирования
	store := sessionstore.New(
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		time.Duration(cfg.Session.CleanupIntervalMinutes)*time.Minute,
	)
	defer store.Close()
	log.Info("Session store initialized (ttl=%dm, cleanup=%dm)",
		cfg.Session.TTLMinutes, cfg.Session.CleanupIntervalMinutes)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	selectionSvc := selectionService.NewService(store, catalogSvc, log)

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUsecase(
		scheduleClient,
		selectionSvc,
		resolveAvailabilityUC.FallbackSchedule{
			OpenHour:        cfg.Fallback.OpenHour,
			CloseHour:       cfg.Fallback.CloseHour,
			ThinningEnabled: cfg.Fallback.ThinningEnabled,
			DropRate:        cfg.Fallback.DropRate,
		},
		&resolveAvailabilityUC.RealTimeProvider{},
		metricsCollector,
		log,
		*cfg.ScheduleService.RetryAttempts,
		time.Duration(cfg.ScheduleService.RetryDelaySeconds)*time.Second,
	)
	submitBookingUseCase := submitBookingUC.NewUsecase(
		selectionSvc,
		bookingClient,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getServiceGroups := getServiceGroupsHandler.NewHandler(catalogSvc, log)
	createSession := createSessionHandler.NewHandler(selectionSvc, log)
	getSession := getSessionHandler.NewHandler(selectionSvc, log)
	selectCategory := selectCategoryHandler.NewHandler(selectionSvc, log)
	selectService := selectServiceHandler.NewHandler(selectionSvc, log)
	selectDate := selectDateHandler.NewHandler(selectionSvc, log)
	selectTime := selectTimeHandler.NewHandler(selectionSvc, log)
	advanceStep := advanceStepHandler.NewHandler(selectionSvc, log)
	retreatStep := retreatStepHandler.NewHandler(selectionSvc, log)
	setStep := setStepHandler.NewHandler(selectionSvc, log)
	resetSession := resetSessionHandler.NewHandler(selectionSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(resolveAvailabilityUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	authSession := authSessionHandler.NewHandler(authClient, log)
	authLogout := authLogoutHandler.NewHandler(authClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-groups", getServiceGroups.Handle).Methods(http.MethodGet)

	// --- Сессии бронирования ---
	api.HandleFunc("/booking-sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{sessionId}/category", selectCategory.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/retreat", retreatStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/step", setStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)

	// --- Доступность и отправка ---
	api.HandleFunc("/booking-sessions/{sessionId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Аутентификация админ-панели (прокси) ---
	api.HandleFunc("/auth/session", authSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", authLogout.Handle).Methods(http.MethodPost)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
