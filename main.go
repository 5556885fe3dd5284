package main

import (
	"log"
	"net/http"

	"github.com/Eursukkul/venue-booking/config"
	"github.com/Eursukkul/venue-booking/internal/availability"
	"github.com/Eursukkul/venue-booking/internal/booking"
	"github.com/Eursukkul/venue-booking/internal/handler"
	"github.com/Eursukkul/venue-booking/internal/middleware"
	"github.com/Eursukkul/venue-booking/internal/pricing"
	"github.com/Eursukkul/venue-booking/internal/repository"
	"github.com/Eursukkul/venue-booking/internal/service"
	"github.com/Eursukkul/venue-booking/internal/upstream"
	"github.com/Eursukkul/venue-booking/pkg/database"
	"github.com/Eursukkul/venue-booking/pkg/logger"
	"github.com/Eursukkul/venue-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Receipts: optional, enabled by DB_HOST
	var receiptRepo repository.ReceiptRepository
	if cfg.ReceiptsEnabled() {
		db, err := database.NewPostgresDB(cfg.DSN())
		if err != nil {
			zl.Fatal("failed to open receipts database", zap.Error(err))
		}
		receiptRepo = repository.NewReceiptRepository(db)
	}

	// RabbitMQ publisher: optional, enabled by RABBITMQ_URL
	var publisher service.Publisher
	if cfg.PublishingEnabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, zl)
		if err != nil {
			zl.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	client, err := upstream.NewClient(cfg.UpstreamBaseURL, &http.Client{}, zl)
	if err != nil {
		zl.Fatal("invalid upstream url", zap.Error(err))
	}

	table := pricing.DefaultPriceTable()
	receiptSvc := service.NewReceiptService(receiptRepo, publisher, zl)
	checker := availability.NewChecker(client, zl)
	submitter := booking.NewSubmitter(client, table, receiptSvc, zl)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.NewErrorHandler(zl)
	e.Use(middleware.RequestLogger(zl))
	e.Use(echoMw.Recover())
	e.Use(middleware.Session(cfg.SessionCookie))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "venue-booking"})
	})

	handler.NewBookingHandler(table, checker, submitter, receiptSvc).RegisterRoutes(e)

	zl.Info("venue booking service starting",
		zap.String("port", cfg.ServerPort),
		zap.String("upstream", cfg.UpstreamBaseURL),
		zap.Bool("receipts", cfg.ReceiptsEnabled()),
		zap.Bool("publishing", cfg.PublishingEnabled()))
	if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
