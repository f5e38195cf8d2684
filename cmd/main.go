package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/phsants/usetravel-service/internal/app/config"
	"github.com/phsants/usetravel-service/internal/app/dto"
	"github.com/phsants/usetravel-service/internal/app/endpoints"
	"github.com/phsants/usetravel-service/internal/app/service"
	"github.com/phsants/usetravel-service/internal/app/transport"
	"github.com/phsants/usetravel-service/internal/pkg/logger"
	"github.com/phsants/usetravel-service/internal/pkg/offer"
	"github.com/phsants/usetravel-service/internal/pkg/session"
	"github.com/phsants/usetravel-service/internal/pkg/travelapi"
	"github.com/redis/go-redis/v9"
)

// @title           UseTravel Dashboard Service API
// @version         0.0.1
// @description     usetravel-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	sessions, err := session.NewManager(cfg.Session.SigningKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init session manager", slog.String("error", err.Error()))
		panic(err)
	}

	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, sessions, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init upstream client
	upstream := travelapi.NewClient(travelapi.Config{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		MaxRetries:   cfg.Upstream.MaxRetries,
		RateLimitRPS: cfg.Upstream.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	})

	// init service endpoints
	return endpoints.Endpoints{
		OfferEndpoint:  makeOfferEndpoint(upstream, redisClient, cfg),
		SearchEndpoint: makeSearchEndpoint(upstream, cfg),
	}
}

func makeOfferEndpoint(upstream *travelapi.Client,
	redisClient *redis.Client, cfg *config.Config,
) endpoints.OfferEndpoint {
	// cache
	offerCache := offer.NewCache(redisClient)

	// service
	offerService := service.NewOfferService(upstream, offerCache,
		cfg.Offers.CacheExpiration, cfg.Offers.LockTimeout, cfg.Offers.EnrichmentWorkers)

	// endpoint
	return endpoints.MakeOfferEndpoint(offerService)
}

func makeSearchEndpoint(upstream *travelapi.Client, cfg *config.Config) endpoints.SearchEndpoint {
	searchService := service.NewSearchService(upstream, cfg.Offers.CityCacheTTL)

	return endpoints.MakeSearchEndpoint(searchService)
}
