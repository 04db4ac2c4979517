package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/dinehub/food-marketplace/delivery-engine/config"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/controller"
	circuitbreaker "github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/circuit-breaker"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/database/postgres"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/geocoding"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/payment-gateway"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/infrastructure/tracing"
	localmiddleware "github.com/dinehub/food-marketplace/delivery-engine/internal/middleware"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/repository"
	"github.com/dinehub/food-marketplace/delivery-engine/internal/service"
	"github.com/dinehub/food-marketplace/delivery-engine/pkg/response"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	midtransClient := paymentgateway.CreateMidtransClient(config)

	kafkaProducer := kafka.CreateKafkaProducer(config)

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		panic(err)
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, "delivery-engine")
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("delivery-engine")

	e := echo.New()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	cb := circuitbreaker.CreateCircuitBreaker("delivery-engine-geocoder")
	geocoder := geocoding.CreateGeocoder(config, cb)

	deliveryRepo := repository.CreateDeliveryRepository(db)
	deliverySvc := service.CreateDeliveryService(deliveryRepo, geocoder)
	orderSvc := service.CreateOrderService(deliveryRepo, geocoder, midtransClient, kafkaProducer, config)
	controller.CreateDeliveryController(g, orderSvc, deliverySvc)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			1*time.Minute,
		),
		gocron.NewTask(
			orderSvc.ExpirePendingPayments,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
