package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/service"
	"github.com/exemplo/crudmongo-api/internal/store"
	"github.com/exemplo/crudmongo-api/pkg/config"
)

const shutdownTimeout = 10 * time.Second

// Server owns the HTTP listener and the connections it closes on shutdown.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router *gin.Engine
	store  store.Store
	redis  *redis.Client
	http   *http.Server
}

// New connects the backing services and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	docs, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	cache, redisClient := OpenCache(ctx, cfg, metrics, logger)

	router := NewRouter(Dependencies{
		Config:  cfg,
		Logger:  logger,
		Store:   docs,
		Cache:   cache,
		Metrics: metrics,
	})

	return &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
		store:  docs,
		redis:  redisClient,
	}, nil
}

// Run serves HTTP until the listener fails or SIGINT/SIGTERM arrives, then shuts down.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.http.Addr), zap.String("env", s.cfg.Env))
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.closeBackends(context.Background())
			return fmt.Errorf("listen: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests and closes the store and cache connections.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("http shutdown failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if err := s.closeBackends(ctx); err != nil {
		errs = append(errs, err)
	}

	s.logger.Info("server stopped")
	return errors.Join(errs...)
}

func (s *Server) closeBackends(ctx context.Context) error {
	var errs []error
	if s.store != nil {
		if err := s.store.Close(ctx); err != nil {
			s.logger.Error("store close failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("redis close failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
