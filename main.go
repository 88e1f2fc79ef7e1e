package main

import (
	"context"
	"time"

	"github.com/harborview/hotel-backend/config"
	"github.com/harborview/hotel-backend/internal/consumer"
	"github.com/harborview/hotel-backend/internal/handler"
	"github.com/harborview/hotel-backend/internal/middleware"
	"github.com/harborview/hotel-backend/internal/notifier"
	"github.com/harborview/hotel-backend/internal/repository"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/harborview/hotel-backend/pkg/database"
	"github.com/harborview/hotel-backend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Broker is optional: without it, codes go to the operational log and
	// summary refreshes stay in-process.
	var publisher *rabbitmq.Publisher
	var codeNotifier service.CodeNotifier
	if cfg.RabbitURL != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		codeNotifier = notifier.NewBrokerNotifier(publisher, logger)
	}

	// Services
	summarySvc := service.NewSummaryService(bookingRepo, summaryRepo)
	verificationSvc := service.NewVerificationService(
		verificationRepo,
		codeNotifier,
		logger,
		time.Duration(cfg.VerificationCooldown)*time.Second,
		time.Duration(cfg.VerificationExpiryMin)*time.Minute,
	)
	rateSvc := service.NewRateService(roomTypeRepo)
	guestSvc := service.NewGuestService(guestRepo, bookingRepo)

	var eventPublisher service.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	bookingSvc := service.NewBookingService(
		bookingRepo,
		guestRepo,
		verificationRepo,
		roomTypeRepo,
		summarySvc,
		eventPublisher,
		logger,
		decimal.NewFromFloat(cfg.MinimumDeposit),
		cfg.OnlinePaymentMethods,
	)

	// Cross-instance summary refresh on booking events
	if cfg.RabbitURL != "" {
		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("failed to connect consumer to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			logger.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewBookingConsumer(summarySvc, logger).Start(msgs)
	}

	// Warm the summary buckets before serving dashboards.
	if err := summarySvc.Refresh(context.Background(), time.Now()); err != nil {
		logger.WithError(err).Warn("initial sales summary refresh failed")
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-backend"})
	})

	handler.NewVerificationHandler(verificationSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewRateHandler(rateSvc).RegisterRoutes(e)
	handler.NewGuestHandler(guestSvc).RegisterRoutes(e)
	handler.NewOverviewHandler(summarySvc).RegisterRoutes(e)

	logger.Infof("hotel backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
