package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/medatlas/directory-api/internal/catalog"
	"github.com/medatlas/directory-api/internal/config"
	"github.com/medatlas/directory-api/internal/handler"
	chatHandler "github.com/medatlas/directory-api/internal/handler/chat"
	hospitalHandler "github.com/medatlas/directory-api/internal/handler/hospital"
	metaHandler "github.com/medatlas/directory-api/internal/handler/meta"
	placeHandler "github.com/medatlas/directory-api/internal/handler/place"
	"github.com/medatlas/directory-api/internal/middleware"
	"github.com/medatlas/directory-api/internal/router"
	"github.com/medatlas/directory-api/internal/service/chat"
	"github.com/medatlas/directory-api/internal/service/directory"
	"github.com/medatlas/directory-api/internal/service/places"
	"github.com/medatlas/directory-api/pkg/logger"
	"github.com/medatlas/directory-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal(err, "failed to load hospital catalog")
	}
	log.Info("catalog loaded", "hospitals", cat.Len())

	m := metrics.NewMetrics("medatlas", "directory")

	directorySvc := directory.NewService(cat, catalog.StaticGeocoder{})
	placesSvc := places.NewService(cfg.Places.CacheTTL())

	engine := chat.NewEngine(time.Now().UnixNano())
	engine.OnRuleMatch = func(rule string) {
		m.ChatRuleMatches.WithLabelValues(rule).Inc()
	}
	transcripts := chat.NewTranscriptStore(cfg.Chat.SessionTTL())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Server.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	}

	r := router.NewRouter(
		handler.New(),
		router.Config{
			Logger:        log,
			RateLimit:     rate.Limit(cfg.Server.RateLimit),
			RateBurst:     cfg.Server.RateBurst,
			Timeout:       cfg.Server.Timeout(),
			CORSConfig:    corsConfig,
			MetricsPrefix: "directory_api",
		},
		hospitalHandler.NewHandler(directorySvc, m),
		placeHandler.NewHandler(directorySvc, placesSvc, m),
		chatHandler.NewHandler(engine, transcripts, directorySvc, m),
		metaHandler.NewHandler(directorySvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
	log.Info("server stopped")
}
