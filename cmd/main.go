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

	cancelAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/cancel_appointment"
	cancelOrderHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/cancel_order"
	completeAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/complete_appointment"
	confirmAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/create_appointment"
	createOrderHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/create_order"
	deliverOrderHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/deliver_order"
	exportRevenueHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/export_revenue"
	getAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/get_appointment"
	getAppointmentActionsHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/get_appointment_actions"
	getAvailableSlotsHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/get_available_slots"
	getRevenueStatsHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/get_revenue_stats"
	listAppointmentsHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/list_appointments"
	listOrdersHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/list_orders"
	loginHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/logout"
	payAppointmentHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/pay_appointment"
	payOrderHandler "github.com/m04kA/SPA-AdminService/internal/api/handlers/pay_order"
	"github.com/m04kA/SPA-AdminService/internal/api/middleware"
	"github.com/m04kA/SPA-AdminService/internal/config"
	"github.com/m04kA/SPA-AdminService/internal/domain"
	"github.com/m04kA/SPA-AdminService/internal/infra/session"
	appointmentRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/appointment"
	orderRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/order"
	serviceRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SPA-AdminService/internal/infra/storage/user"
	appointmentsService "github.com/m04kA/SPA-AdminService/internal/service/appointments"
	authService "github.com/m04kA/SPA-AdminService/internal/service/auth"
	ordersService "github.com/m04kA/SPA-AdminService/internal/service/orders"
	statsService "github.com/m04kA/SPA-AdminService/internal/service/stats"
	createAppointmentUC "github.com/m04kA/SPA-AdminService/internal/usecase/create_appointment"
	getAppointmentActionsUC "github.com/m04kA/SPA-AdminService/internal/usecase/get_appointment_actions"
	getAvailableSlotsUC "github.com/m04kA/SPA-AdminService/internal/usecase/get_available_slots"
	"github.com/m04kA/SPA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SPA-AdminService/pkg/logger"
	"github.com/m04kA/SPA-AdminService/pkg/metrics"
	"github.com/m04kA/SPA-AdminService/pkg/simpletxmanager"
	"github.com/m04kA/SPA-AdminService/pkg/txmanager"
	"github.com/m04kA/SPA-AdminService/pkg/types"
)

const defaultSessionTTL = 12 * time.Hour

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

	log.Info("Starting SPA-AdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Подключаемся к Redis (хранилище сессий)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	sessionTTL := time.Duration(cfg.Redis.SessionTTLMinutes) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	sessionStore := session.NewStore(redisClient, sessionTTL)

	// Каталог слотов: из конфига или по умолчанию
	catalogue := domain.DefaultSlotCatalogue()
	if len(cfg.Booking.SlotTimes) > 0 {
		slotTimes := make([]types.TimeString, 0, len(cfg.Booking.SlotTimes))
		for _, s := range cfg.Booking.SlotTimes {
			ts, err := types.NewTimeStringFromString(s)
			if err != nil {
				log.Fatal("Invalid slot time %q in config: %v", s, err)
			}
			slotTimes = append(slotTimes, ts)
		}
		catalogue = domain.NewSlotCatalogue(slotTimes)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		orderRepository       *orderRepo.Repository
		serviceRepository     *serviceRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		cfg.Booking.AllowScheduledCancel,
		log,
	)
	orderSvc := ordersService.NewService(orderRepository, log)
	statsSvc := statsService.NewService(appointmentRepository, orderRepository, log)
	authSvc := authService.NewService(userRepository, sessionStore, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		userRepository,
		txMgr,
		catalogue,
		cfg.Booking.MaxConcurrentPerSlot,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalogue, log)
	getAppointmentActionsUseCase := getAppointmentActionsUC.NewUseCase(
		appointmentRepository,
		cfg.Booking.AllowScheduledCancel,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, sessionTTL, log)
	logout := logoutHandler.NewHandler(authSvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointmentActions := getAppointmentActionsHandler.NewHandler(getAppointmentActionsUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	payAppointment := payAppointmentHandler.NewHandler(appointmentSvc, log)

	createOrder := createOrderHandler.NewHandler(orderSvc, log)
	listOrders := listOrdersHandler.NewHandler(orderSvc, log)
	deliverOrder := deliverOrderHandler.NewHandler(orderSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(orderSvc, log)
	payOrder := payOrderHandler.NewHandler(orderSvc, log)

	getRevenueStats := getRevenueStatsHandler.NewHandler(statsSvc, log)
	exportRevenue := exportRevenueHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход и выход
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Доступные слоты на дату (используется и формой записи клиента)
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей с фильтрацией
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Доступные действия и обратный отсчёт по записи
	protected.HandleFunc("/appointments/{appointmentId}/actions", getAppointmentActions.Handle).Methods(http.MethodGet)

	// Переходы статусов записи
	protected.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}/pay", payAppointment.Handle).Methods(http.MethodPut)

	// --- Заказы ---
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders", listOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId}/deliver", deliverOrder.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/orders/{orderId}/pay", payOrder.Handle).Methods(http.MethodPut)

	// --- Статистика ---
	protected.HandleFunc("/stats/revenue", getRevenueStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stats/revenue/export", exportRevenue.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
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
