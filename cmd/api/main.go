package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/invitation-backend/api/controllers"
	"github.com/angelmondragon/invitation-backend/api/routes"
	"github.com/angelmondragon/invitation-backend/internal/concepts"
	"github.com/angelmondragon/invitation-backend/internal/designs"
	"github.com/angelmondragon/invitation-backend/internal/gallery"
	"github.com/angelmondragon/invitation-backend/internal/order"
	"github.com/angelmondragon/invitation-backend/internal/submission"
	"github.com/angelmondragon/invitation-backend/internal/support"
	"github.com/angelmondragon/invitation-backend/pkg/config"
	"github.com/angelmondragon/invitation-backend/pkg/db"
	"github.com/angelmondragon/invitation-backend/pkg/events"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
	"github.com/angelmondragon/invitation-backend/pkg/metrics"
	"github.com/angelmondragon/invitation-backend/pkg/migrate"
	"github.com/angelmondragon/invitation-backend/pkg/pubsub"
	"github.com/angelmondragon/invitation-backend/pkg/redis"
)

const (
	serviceName     = "invite-api"
	shutdownTimeout = 15 * time.Second
)

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, closers[i].Close())
		}
	}()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	closers = append(closers, dbClient)

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		return err
	}
	closers = append(closers, redisClient)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var (
		orderEmitter   events.Emitter
		inquiryEmitter events.Emitter
		pubsubPinger   controllers.Pinger
	)
	if cfg.Ordering.UsesPubSub() {
		psClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			return err
		}
		closers = append(closers, psClient)
		pubsubPinger = psClient

		if orderEmitter, err = events.NewPubSubEmitter(events.NewGCPPublisher(psClient.Publisher(cfg.PubSub.OrdersTopic)), serviceName); err != nil {
			return err
		}
		if inquiryEmitter, err = events.NewPubSubEmitter(events.NewGCPPublisher(psClient.Publisher(cfg.PubSub.InquiriesTopic)), serviceName); err != nil {
			return err
		}
	} else {
		logEmitter, err := events.NewLogEmitter(logg, serviceName)
		if err != nil {
			return err
		}
		orderEmitter, inquiryEmitter = logEmitter, logEmitter
	}

	designService, err := designs.NewService(designs.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}
	galleryService, err := gallery.NewService(gallery.NewRepository(dbClient.DB()))
	if err != nil {
		return err
	}

	sink, err := submission.NewSink(orderEmitter)
	if err != nil {
		return err
	}
	orderService, err := order.NewService(designService, sink, order.PolicyFromConfig(cfg.Ordering), metrics.NewOrderMetrics(registry), logg)
	if err != nil {
		return err
	}

	conceptService, err := newConceptService(cfg, registry, logg)
	if err != nil {
		return err
	}

	supportService, err := support.NewService(inquiryEmitter, logg)
	if err != nil {
		return err
	}

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, registry, dbClient, redisClient, pubsubPinger,
			designService, galleryService, orderService, conceptService, supportService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"sink":     cfg.Ordering.Sink,
		"concepts": cfg.Concepts.Provider,
	})
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "api server shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newConceptService(cfg *config.Config, reg prometheus.Registerer, logg *logger.Logger) (concepts.Service, error) {
	opts := concepts.Options{
		Provider:    cfg.Concepts.Provider,
		Count:       cfg.Concepts.Count,
		Concurrency: cfg.Concepts.Concurrency,
		ItemTimeout: cfg.Concepts.ItemTimeout,
	}
	m := metrics.NewConceptMetrics(reg)

	if !cfg.Concepts.UsesGemini() {
		return concepts.NewService(concepts.NewDemoWriter(), concepts.NewDemoRenderer(), opts, m, logg)
	}
	client, err := concepts.NewGeminiClient(concepts.GeminiConfig{
		BaseURL:    cfg.Gemini.BaseURL,
		APIKey:     cfg.Gemini.APIKey,
		TextModel:  cfg.Gemini.TextModel,
		ImageModel: cfg.Gemini.ImageModel,
		Timeout:    cfg.Gemini.Timeout,
		MaxRetries: cfg.Gemini.MaxRetries,
	})
	if err != nil {
		return nil, err
	}
	return concepts.NewService(client, client, opts, m, logg)
}
