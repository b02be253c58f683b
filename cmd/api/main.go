package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/vet-scheduler/internal/db"
	"github.com/BruksfildServices01/vet-scheduler/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/vet-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/vet-scheduler/internal/logger"
	"github.com/BruksfildServices01/vet-scheduler/internal/metrics"
	"github.com/BruksfildServices01/vet-scheduler/internal/middleware"
	"github.com/BruksfildServices01/vet-scheduler/internal/routes"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.SetupDefault(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🗄️ STORAGE
	// ======================================================
	deps := routes.Deps{
		Hasher:      security.NewBcryptHasher(cfg.BcryptCost),
		Issuer:      auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Logger:      log,
		CORSOrigins: cfg.CORSAllowedOrigins,
	}

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		deps.Repos = routes.Repositories{
			Users:        store.Users(),
			Pets:         store.Pets(),
			Vets:         store.Vets(),
			Appointments: store.Appointments(),
		}
		deps.Audit = audit.NewMemory()

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		deps.Repos = routes.Repositories{
			Users:        infraRepo.NewUserGormRepository(db),
			Pets:         infraRepo.NewPetGormRepository(db),
			Vets:         infraRepo.NewVetGormRepository(db),
			Appointments: infraRepo.NewAppointmentGormRepository(db),
		}
		deps.Audit = audit.New(db)
	}

	log.Info("storage ready", slog.String("driver", cfg.StorageDriver))

	// ======================================================
	// ⚡ CACHE
	// ======================================================
	deps.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		deps.Cache = redisCache
		log.Info("redis cache enabled", slog.Duration("ttl", cfg.CacheTTL))
	}

	// ======================================================
	// 📈 METRICS + RATE LIMIT
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewCollector(reg)
	deps.Gatherer = reg
	deps.RateLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimitRPS),
		Burst: cfg.RateLimitBurst,
	}, deps.Metrics)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewEngine(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
