package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addGalleryImageHandler "github.com/lubooking/booking-service/internal/api/handlers/add_gallery_image"
	cancelBookingHandler "github.com/lubooking/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lubooking/booking-service/internal/api/handlers/create_booking"
	deleteAvailabilityWindowHandler "github.com/lubooking/booking-service/internal/api/handlers/delete_availability_window"
	deleteGalleryImageHandler "github.com/lubooking/booking-service/internal/api/handlers/delete_gallery_image"
	deleteLogoHandler "github.com/lubooking/booking-service/internal/api/handlers/delete_logo"
	generateWeeklyScheduleHandler "github.com/lubooking/booking-service/internal/api/handlers/generate_weekly_schedule"
	getAvailabilityHandler "github.com/lubooking/booking-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/lubooking/booking-service/internal/api/handlers/get_available_slots"
	getBarberHandler "github.com/lubooking/booking-service/internal/api/handlers/get_barber"
	getBarberBookingsHandler "github.com/lubooking/booking-service/internal/api/handlers/get_barber_bookings"
	getGalleryHandler "github.com/lubooking/booking-service/internal/api/handlers/get_gallery"
	healthHandler "github.com/lubooking/booking-service/internal/api/handlers/health"
	listBarbersHandler "github.com/lubooking/booking-service/internal/api/handlers/list_barbers"
	setLogoHandler "github.com/lubooking/booking-service/internal/api/handlers/set_logo"
	updateAvailabilityHandler "github.com/lubooking/booking-service/internal/api/handlers/update_availability"
	"github.com/lubooking/booking-service/internal/api/middleware"
	"github.com/lubooking/booking-service/internal/config"
	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/internal/infra/blobstore"
	"github.com/lubooking/booking-service/internal/infra/fixture"
	availabilityRepo "github.com/lubooking/booking-service/internal/infra/storage/availability"
	barberRepo "github.com/lubooking/booking-service/internal/infra/storage/barber"
	bookingRepo "github.com/lubooking/booking-service/internal/infra/storage/booking"
	galleryRepo "github.com/lubooking/booking-service/internal/infra/storage/gallery"
	serviceRepo "github.com/lubooking/booking-service/internal/infra/storage/service"
	availabilityService "github.com/lubooking/booking-service/internal/service/availability"
	barbersService "github.com/lubooking/booking-service/internal/service/barbers"
	bookingsService "github.com/lubooking/booking-service/internal/service/bookings"
	galleryService "github.com/lubooking/booking-service/internal/service/gallery"
	createBookingUC "github.com/lubooking/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/lubooking/booking-service/internal/usecase/get_available_slots"
	"github.com/lubooking/booking-service/pkg/dbmetrics"
	"github.com/lubooking/booking-service/pkg/logger"
	"github.com/lubooking/booking-service/pkg/metrics"
	"github.com/lubooking/booking-service/pkg/simpletxmanager"
	"github.com/lubooking/booking-service/pkg/txmanager"
)

// Union-интерфейсы хранилищ: им удовлетворяют и SQL-репозитории,
// и фикстурные сторы демо-режима.

type barberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Barber, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Barber, error)
	ListActive(ctx context.Context) ([]*domain.Barber, error)
	UpdateLogo(ctx context.Context, barberID int64, logoURL *string) error
}

type serviceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActiveByBarber(ctx context.Context, barberID int64) ([]*domain.Service, error)
}

type availabilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.AvailabilityWindow, error)
	ListByBarberFromDate(ctx context.Context, barberID int64, from time.Time, limit uint64) ([]*domain.AvailabilityWindow, error)
	DatesWithWindows(ctx context.Context, barberID int64, from, to time.Time) (map[string]bool, error)
	CreateBatch(ctx context.Context, windows []*domain.AvailabilityWindow) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteByBarberAndDate(ctx context.Context, barberID int64, date time.Time) error
}

type bookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBarberWithFilter(ctx context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

type galleryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.GalleryImage, error)
	Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type blobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

func main() {
	// .env опционален: в деплое переменные приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml (mode=%s, demo=%v)", cfg.App.Mode, cfg.App.Demo)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища: фикстуры в демо-режиме, Postgres в остальных
	var (
		barberRepository       barberRepository
		serviceRepository      serviceRepository
		availabilityRepository availabilityRepository
		bookingRepository      bookingRepository
		galleryRepository      galleryRepository
		txMgr                  txManager
		blobs                  blobStore
		pinger                 healthHandler.Pinger
	)

	if cfg.App.Demo {
		stores := fixture.NewStores(cfg.App.SingleBarberSlug, time.Now().UTC())
		barberRepository = stores.Barbers
		serviceRepository = stores.Services
		availabilityRepository = stores.Availability
		bookingRepository = stores.Bookings
		galleryRepository = stores.Gallery
		txMgr = stores.TxManager
		blobs = stores.Blobs
		log.Info("Demo mode: in-memory fixture stores seeded (slug=%s)", cfg.App.SingleBarberSlug)
	} else {
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
		pinger = db

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			barberRepository = barberRepo.NewRepository(wrappedDB)
			serviceRepository = serviceRepo.NewRepository(wrappedDB)
			availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
			bookingRepository = bookingRepo.NewRepository(wrappedDB)
			galleryRepository = galleryRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			barberRepository = barberRepo.NewRepository(db)
			serviceRepository = serviceRepo.NewRepository(db)
			availabilityRepository = availabilityRepo.NewRepository(db)
			bookingRepository = bookingRepo.NewRepository(db)
			galleryRepository = galleryRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

		// Blob-хранилище изображений; без бакета загрузки отключены
		store, err := blobstore.NewStoreFromConfig(context.Background(),
			cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.PublicBaseURL)
		switch {
		case err == nil:
			log.Info("Blob storage initialized (bucket=%s)", cfg.Storage.Bucket)
		case errors.Is(err, blobstore.ErrNotConfigured):
			log.Warn("Blob storage not configured, image uploads disabled")
		default:
			log.Fatal("Failed to initialize blob storage: %v", err)
		}
		blobs = store
	}

	// Инициализируем сервисы
	barberSvc := barbersService.NewService(barberRepository, serviceRepository, galleryRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, barberRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, barberRepository, txMgr, log)
	gallerySvc := galleryService.NewService(galleryRepository, barberRepository, blobs, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		barberRepository,
		serviceRepository,
		availabilityRepository,
		bookingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		serviceRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBarber := getBarberHandler.NewHandler(barberSvc, log)
	listBarbers := listBarbersHandler.NewHandler(barberSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	generateWeeklySchedule := generateWeeklyScheduleHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityWindow := deleteAvailabilityWindowHandler.NewHandler(availabilitySvc, log)
	getGallery := getGalleryHandler.NewHandler(gallerySvc, log)
	addGalleryImage := addGalleryImageHandler.NewHandler(gallerySvc, log)
	deleteGalleryImage := deleteGalleryImageHandler.NewHandler(gallerySvc, log)
	setLogo := setLogoHandler.NewHandler(gallerySvc, log)
	deleteLogo := deleteLogoHandler.NewHandler(gallerySvc, log)
	health := healthHandler.NewHandler(pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичный профиль барбера
	api.HandleFunc("/barbers/{slug}", getBarber.Handle).Methods(http.MethodGet)

	// Список барберов доступен только в режиме маркетплейса
	if cfg.App.IsMarketplaceMode() {
		api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	}

	// Доступные слоты барбера
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования по токену отмены
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (кабинет барбера, JWT)
	// ============================================================

	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer))

	// --- Бронирования ---
	dashboard.HandleFunc("/bookings", getBarberBookings.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	dashboard.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	dashboard.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)
	dashboard.HandleFunc("/availability/weekly", generateWeeklySchedule.Handle).Methods(http.MethodPost)
	dashboard.HandleFunc("/availability/{windowId}", deleteAvailabilityWindow.Handle).Methods(http.MethodDelete)

	// --- Галерея и логотип ---
	dashboard.HandleFunc("/gallery", getGallery.Handle).Methods(http.MethodGet)
	dashboard.HandleFunc("/gallery", addGalleryImage.Handle).Methods(http.MethodPost)
	dashboard.HandleFunc("/gallery/{imageId}", deleteGalleryImage.Handle).Methods(http.MethodDelete)
	dashboard.HandleFunc("/logo", setLogo.Handle).Methods(http.MethodPut)
	dashboard.HandleFunc("/logo", deleteLogo.Handle).Methods(http.MethodDelete)

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
