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

	cancelBookingHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/create_booking"
	generateDaySlotsHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/generate_day_slots"
	getBookingHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/get_bookings"
	getDaySlotsHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/get_day_slots"
	getMemberBookingsHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/get_member_bookings"
	getTeamMembersHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/get_team_members"
	propagateTemplateHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/propagate_template"
	rescheduleBookingHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/reschedule_booking"
	updateMemberCalendarHandler "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/handlers/update_member_calendar"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/api/middleware"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/config"
	bookingRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/booking"
	memberRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/member"
	slotRepo "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/infra/storage/slot"
	bookingsService "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/bookings"
	membersService "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/service/members"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/timegrid"
	allocateDayUC "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/allocate_day"
	createBookingUC "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/create_booking"
	propagateTemplateUC "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/propagate_template"
	rescheduleBookingUC "github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/usecase/reschedule_booking"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/dbmetrics"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/logger"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/metrics"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/simpletxmanager"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/syncqueue"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/pkg/txmanager"
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

	log.Info("Starting MerchantCare-ScheduleSync...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Публикация задач синхронизации календаря (опционально)
	var syncPublisher *syncqueue.Publisher
	if cfg.Queue.Enabled {
		syncPublisher, err = syncqueue.NewPublisher(cfg.Queue.URL, cfg.Queue.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to queue: %v", err)
		}
		defer syncPublisher.Close()
		log.Info("Calendar sync queue connected (exchange=%s)", cfg.Queue.Exchange)
	} else {
		log.Warn("Calendar sync queue disabled, bookings will not be synced")
	}

	// Конфигурация сетки слотов
	grid := timegrid.Config{
		StartHour:       cfg.Grid.StartHour,
		EndHour:         cfg.Grid.EndHour,
		IntervalMinutes: cfg.Grid.IntervalMinutes,
	}
	if err := grid.Validate(); err != nil {
		log.Fatal("Invalid grid configuration: %v", err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
		memberRepository  *memberRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		memberRepository = memberRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		memberRepository = memberRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Публикатор как интерфейсное значение: nil, если очередь выключена
	var createSync createBookingUC.SyncPublisher
	var rescheduleSync rescheduleBookingUC.SyncPublisher
	var cancelSync bookingsService.SyncPublisher
	if syncPublisher != nil {
		createSync = syncPublisher
		rescheduleSync = syncPublisher
		cancelSync = syncPublisher
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		memberRepository,
		cancelSync,
		txMgr,
		time.Local,
		log,
	)
	memberSvc := membersService.NewService(memberRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		createSync,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		rescheduleSync,
		txMgr,
		log,
	)
	allocateDayUseCase := allocateDayUC.NewUseCase(
		memberRepository,
		slotRepository,
		txMgr,
		grid,
		log,
	)
	propagateTemplateUseCase := propagateTemplateUC.NewUseCase(
		memberRepository,
		slotRepository,
		txMgr,
		grid,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(bookingSvc, log)
	getTeamMembers := getTeamMembersHandler.NewHandler(memberSvc, log)
	getMemberBookings := getMemberBookingsHandler.NewHandler(bookingSvc, log)
	updateMemberCalendar := updateMemberCalendarHandler.NewHandler(memberSvc, log)
	generateDaySlots := generateDaySlotsHandler.NewHandler(allocateDayUseCase, log)
	propagateTemplate := propagateTemplateHandler.NewHandler(propagateTemplateUseCase, log)

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

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Слоты и команда
	api.HandleFunc("/slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/team-members", getTeamMembers.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	// Управление сеткой слотов
	admin.HandleFunc("/slots/generate", generateDaySlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/propagate", propagateTemplate.Handle).Methods(http.MethodPost)

	// Команда
	admin.HandleFunc("/team-members/{memberId}/bookings", getMemberBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/team-members/{memberId}/calendar", updateMemberCalendar.Handle).Methods(http.MethodPatch)

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
