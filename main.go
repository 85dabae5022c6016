package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"meetpulse/internal/cache"
	"meetpulse/internal/clock"
	"meetpulse/internal/config"
	"meetpulse/internal/errtrack"
	"meetpulse/internal/export"
	"meetpulse/internal/handler"
	"meetpulse/internal/health"
	"meetpulse/internal/metrics"
	custommiddleware "meetpulse/internal/middleware"
	"meetpulse/internal/sampler"
	"meetpulse/internal/scheduler"
	"meetpulse/internal/snapshotid"
	"meetpulse/internal/telemetry"
	"meetpulse/internal/validation"
)

const (
	taskSampler   = "system-sampler"
	taskTelemetry = "telemetry"
	taskAnalysis  = "error-analysis"
	taskInfra     = "infra-gauges"

	infraInterval = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clk := clock.Real{}

	probe, err := sampler.NewRuntimeProbe()
	if err != nil {
		return fmt.Errorf("failed to create runtime probe: %w", err)
	}

	// The tracker is created after the sampler, so alerts reach it through
	// a handler bound once both exist.
	alerts := &alertReporter{log: sampler.LogAlertHandler{Logger: logger}}
	sys := sampler.New(probe, alerts, clk, logger, sampler.Config{
		CPU:      sampler.Thresholds{Warning: cfg.Sampler.CPUWarning, Critical: cfg.Sampler.CPUCritical},
		Memory:   sampler.Thresholds{Warning: cfg.Sampler.MemoryWarning, Critical: cfg.Sampler.MemoryCritical},
		Cooldown: cfg.Sampler.AlertCooldown,
	})

	recorder := metrics.NewRecorder(clk, logger,
		metrics.WithGaugeObserver(sys, metrics.CategorySystem))

	tracker := errtrack.New(clk, logger, recorder, errtrack.Config{
		Retention:           cfg.Errors.Retention,
		TrendWindow:         cfg.Errors.TrendWindow,
		RateWarningPct:      cfg.Errors.RateWarningPct,
		RateCriticalPct:     cfg.Errors.RateCriticalPct,
		PatternMinComponent: cfg.Errors.PatternMinComponents,
	})
	alerts.errs = tracker

	ids, err := snapshotid.New(uint64(clk.Now().Unix()))
	if err != nil {
		return fmt.Errorf("failed to create snapshot id generator: %w", err)
	}

	var sinks export.MultiSink
	if cfg.Export.LogEnabled {
		sinks = append(sinks, export.LogSink{Logger: logger})
	}

	var prom *export.PrometheusSink
	if cfg.Export.PrometheusEnabled {
		prom = export.NewPrometheusSink(true)
		sinks = append(sinks, prom)
	}

	var (
		pool   *pgxpool.Pool
		pgSink *export.PostgresSink
	)
	if cfg.Export.PostgresEnabled {
		pool, err = export.NewPool(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to create export pool: %w", err)
		}
		defer pool.Close()

		pgSink = export.NewPostgresSink(pool, &cfg.Export, clk, logger)
		pgSink.Start(ctx)
		defer pgSink.Close()
		sinks = append(sinks, pgSink)
	}

	coordinator := telemetry.New(recorder, sys, tracker, ids, sinks, clk, logger, telemetry.Config{
		ErrorRateWarning:  cfg.Telemetry.ErrorRateWarning,
		ErrorRateCritical: cfg.Telemetry.ErrorRateCritical,
	})

	respCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer respCache.Close()

	sched := scheduler.New(clk, logger)
	tasks := []struct {
		name     string
		interval time.Duration
		fn       scheduler.TaskFunc
	}{
		{taskSampler, cfg.Sampler.Interval, sys.Tick},
		{taskTelemetry, cfg.Telemetry.Interval, coordinator.Tick},
		{taskAnalysis, cfg.Errors.AnalysisInterval, func(ctx context.Context) error {
			_, err := tracker.Analyze(ctx)
			return err
		}},
		{taskInfra, infraInterval, func(context.Context) error {
			collectInfraGauges(sys, respCache, pool)
			return nil
		}},
	}
	for _, t := range tasks {
		if err := sched.Every(t.name, t.interval, t.fn); err != nil {
			return fmt.Errorf("failed to schedule task: %w", err)
		}
	}

	registry := health.NewRegistry(logger,
		health.WithTimeout(cfg.Health.Timeout),
		health.WithConcurrency(cfg.Health.Concurrency),
		health.WithClock(clk),
	)
	indicators := map[string]health.Indicator{
		"system":    sys.HealthIndicator(cfg.Sampler.StaleAfter),
		"errors":    tracker.HealthIndicator(cfg.Errors.HealthWindow),
		"scheduler": sched.HealthIndicator(cfg.Health.SchedulerLag),
	}
	if pgSink != nil {
		indicators["export-database"] = pgSink.HealthIndicator()
	}
	for name, ind := range indicators {
		if err := registry.Register(name, ind); err != nil {
			return fmt.Errorf("failed to register health indicator: %w", err)
		}
	}

	sched.Start(ctx)
	defer sched.Close()
	if err := sched.RunNow(ctx, taskSampler); err != nil {
		logger.Warn("initial system sample failed", slog.String("error", err.Error()))
	}

	queryValidator := validation.NewQueryValidator(&cfg.Validation)
	h := handler.New(coordinator, registry, tracker, queryValidator, respCache, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, tracker))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)
	if prom != nil {
		e.GET("/metrics", echo.WrapHandler(prom.Handler()))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.Int("sinks", len(sinks)))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// alertReporter logs resource alerts and records them as SYSTEM errors.
type alertReporter struct {
	log  sampler.LogAlertHandler
	errs *errtrack.Tracker
}

func (a *alertReporter) HandleAlert(ctx context.Context, alert sampler.Alert) {
	a.log.HandleAlert(ctx, alert)
	if a.errs == nil {
		return
	}
	severity := errtrack.SeverityWarning
	if alert.Level == sampler.StatusCritical {
		severity = errtrack.SeverityCritical
	}
	a.errs.RecordError(string(metrics.CategorySystem), "High"+string(alert.Quantity),
		fmt.Sprintf("%s at %.1f%% (threshold %.1f%%)", alert.Quantity, alert.Value, alert.Threshold),
		severity)
}

// collectInfraGauges publishes cache and pool statistics as system gauges.
func collectInfraGauges(obs metrics.GaugeObserver, respCache *cache.ResponseCache, pool *pgxpool.Pool) {
	hits, misses, ratio := respCache.Stats()
	gauges := map[string]float64{
		"cache_hits":      float64(hits),
		"cache_misses":    float64(misses),
		"cache_hit_ratio": ratio,
	}
	if pool != nil {
		stat := pool.Stat()
		gauges["pool_acquired"] = float64(stat.AcquiredConns())
		gauges["pool_idle"] = float64(stat.IdleConns())
		gauges["pool_total"] = float64(stat.TotalConns())
		gauges["pool_max"] = float64(stat.MaxConns())
	}
	for name, v := range gauges {
		obs.ObserveGauge(name, v)
	}
}
