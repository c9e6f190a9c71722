package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	bookingapp "github.com/muhammadheryan/gadgetfix/application/booking"
	catalogapp "github.com/muhammadheryan/gadgetfix/application/catalog"
	sessionapp "github.com/muhammadheryan/gadgetfix/application/session"
	statsapp "github.com/muhammadheryan/gadgetfix/application/stats"
	ticketapp "github.com/muhammadheryan/gadgetfix/application/ticket"
	uploadapp "github.com/muhammadheryan/gadgetfix/application/upload"
	userapp "github.com/muhammadheryan/gadgetfix/application/user"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	redisclient "github.com/muhammadheryan/gadgetfix/cmd/redis"
	_ "github.com/muhammadheryan/gadgetfix/docs"
	bookingRepo "github.com/muhammadheryan/gadgetfix/repository/booking"
	catalogRepo "github.com/muhammadheryan/gadgetfix/repository/catalog"
	eventRepo "github.com/muhammadheryan/gadgetfix/repository/event"
	redisRepo "github.com/muhammadheryan/gadgetfix/repository/redis"
	storageRepo "github.com/muhammadheryan/gadgetfix/repository/storage"
	ticketRepo "github.com/muhammadheryan/gadgetfix/repository/ticket"
	txRepo "github.com/muhammadheryan/gadgetfix/repository/tx"
	userRepo "github.com/muhammadheryan/gadgetfix/repository/user"
	"github.com/muhammadheryan/gadgetfix/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gadgetfix/transport"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	validatorx "github.com/muhammadheryan/gadgetfix/utils/validator"
	"go.uber.org/zap"
)

// @title GadgetFix API
// @version 1.0
// @description Gadget repair booking API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "gadgetfix-api"); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Booking events are best effort; the API keeps serving without a broker.
	var publisher bookingapp.EventPublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, booking events disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	TicketRepo := ticketRepo.NewTicketRepository(db)
	EventRepo := eventRepo.NewEventRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()
	StorageRepo := storageRepo.NewDiskRepository(cfg.Upload.Dir, cfg.Upload.PublicPath)

	// Initialize application layers
	SessionApp := sessionapp.NewSessionApp(cfg, RedisRepo)
	handler := &transport.RestHandler{
		Config:     cfg,
		SessionApp: SessionApp,
		UserApp:    userapp.NewUserApp(UserRepo, SessionApp),
		CatalogApp: catalogapp.NewCatalogApp(CatalogRepo),
		BookingApp: bookingapp.NewBookingApp(TxRepo, BookingRepo, CatalogRepo, UserRepo, EventRepo, publisher),
		TicketApp:  ticketapp.NewTicketApp(TicketRepo),
		StatsApp:   statsapp.NewStatsApp(UserRepo, BookingRepo),
		UploadApp:  uploadapp.NewUploadApp(cfg, StorageRepo),
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
