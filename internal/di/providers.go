package di

import (
	"fmt"

	"AstroCore/internal/domain/repository"
	"AstroCore/internal/handler/api"
	svccache "AstroCore/internal/service/cache"
	"AstroCore/internal/service/ephemeris"
	"AstroCore/internal/service/ratelimit"
	"AstroCore/internal/usecase"
	pkgcache "AstroCore/pkg/cache"
	"AstroCore/pkg/config"
	"AstroCore/pkg/logger"
	"AstroCore/pkg/metrics"
	"AstroCore/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the chart cache backend selected in config.
func ProvideCache(cfg *config.Config) (pkgcache.Service, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return pkgcache.NewMemoryCache(), nil
	case "redis", "layered":
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
			pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
			pkgcache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		if cfg.Cache.Backend == "layered" {
			return pkgcache.NewLayeredCache(rc), nil
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// ProvideEphemerisSource creates the backend client with an in-process memo.
func ProvideEphemerisSource(cfg *config.Config, log *logger.Logger) repository.EphemerisSource {
	return ephemeris.New(
		cfg.Ephemeris.BaseURL,
		cfg.Ephemeris.Timeout,
		cfg.Ephemeris.RetryAttempts,
		cfg.Ephemeris.MemoTTL,
		svccache.NewTTLCache(),
		log,
	)
}

// ProvideRateLimiter creates the per-IP limiter, or nil when disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
}

// InitializeApp wires up all dependencies and returns the application.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	log, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	m := ProvideMetrics()

	c, err := ProvideCache(cfg)
	if err != nil {
		return nil, err
	}

	source := ProvideEphemerisSource(cfg, log)

	charts := usecase.NewChartUseCase(source, c, m, log, cfg.Cache.TTL)
	synastry := usecase.NewSynastryUseCase(
		charts, m, log,
		usecase.WeightsFromConfig(cfg.Synastry.Categories),
		usecase.OrbsFromConfig(cfg.Engine.AspectOrbs),
	)

	handler := api.NewChartsEchoHandler(log, charts, synastry, source)

	return server.New(cfg, log, handler, ProvideRateLimiter(cfg), c), nil
}
