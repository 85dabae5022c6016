package export

//go:generate go tool mockery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"meetpulse/internal/clock"
	"meetpulse/internal/config"
	"meetpulse/internal/health"
	"meetpulse/internal/telemetry"
)

var ErrBufferFull = errors.New("export buffer full")

// DB is the subset of *pgxpool.Pool the sink writes through.
type DB interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

const schema = `
CREATE TABLE IF NOT EXISTS telemetry_snapshots (
	time              TIMESTAMPTZ      NOT NULL,
	snapshot_id       TEXT             NOT NULL,
	seq               BIGINT           NOT NULL,
	cpu_percent       DOUBLE PRECISION NOT NULL,
	heap_used_mb      DOUBLE PRECISION NOT NULL,
	heap_used_percent DOUBLE PRECISION NOT NULL,
	threads           INTEGER          NOT NULL,
	system_status     TEXT             NOT NULL,
	total_errors      BIGINT           NOT NULL,
	critical_errors   BIGINT           NOT NULL,
	requests          BIGINT           NOT NULL,
	error_rate        DOUBLE PRECISION NOT NULL,
	counters          JSONB
);
CREATE TABLE IF NOT EXISTS component_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	snapshot_id TEXT             NOT NULL,
	category    TEXT             NOT NULL,
	count       BIGINT           NOT NULL,
	avg_ms      DOUBLE PRECISION NOT NULL,
	max_ms      DOUBLE PRECISION NOT NULL
);`

var (
	snapshotColumns = []string{
		"time", "snapshot_id", "seq", "cpu_percent", "heap_used_mb", "heap_used_percent",
		"threads", "system_status", "total_errors", "critical_errors", "requests", "error_rate", "counters",
	}
	componentColumns = []string{"time", "snapshot_id", "category", "count", "avg_ms", "max_ms"}
)

// NewPool connects to Postgres and creates the export tables.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return pool, nil
}

// PostgresSink buffers snapshots and writes them in batches with COPY.
type PostgresSink struct {
	db           DB
	clock        clock.Clock
	logger       *slog.Logger
	cfg          *config.ExportConfig
	ch           chan telemetry.MetricsSnapshot
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewPostgresSink(db DB, cfg *config.ExportConfig, clk clock.Clock, logger *slog.Logger) *PostgresSink {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PostgresSink{
		db:         db,
		clock:      clk,
		logger:     logger,
		cfg:        cfg,
		ch:         make(chan telemetry.MetricsSnapshot, max(1, cfg.BufferSize)),
		shutdownCh: make(chan struct{}),
	}
}

// Export enqueues snap without blocking.
func (s *PostgresSink) Export(_ context.Context, snap telemetry.MetricsSnapshot) error {
	select {
	case s.ch <- snap:
		return nil
	default:
		s.logger.Warn("snapshot export buffer full, dropping snapshot", slog.Uint64("seq", snap.Seq))
		return ErrBufferFull
	}
}

func (s *PostgresSink) Start(ctx context.Context) {
	ticker := s.clock.NewTicker(s.cfg.FlushInterval)
	s.wg.Add(1)
	go s.flushLoop(ctx, ticker)

	s.logger.Info("postgres export sink started",
		slog.Int("buffer_size", s.cfg.BufferSize),
		slog.Duration("flush_interval", s.cfg.FlushInterval))
}

// Close stops the flush loop and writes whatever is still buffered.
func (s *PostgresSink) Close() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)
		s.wg.Wait()
	})
}

func (s *PostgresSink) flushLoop(ctx context.Context, ticker clock.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	threshold := max(1, s.cfg.FlushThreshold)
	batch := make([]telemetry.MetricsSnapshot, 0, threshold)

	for {
		select {
		case <-ctx.Done():
			s.drainAndFlush(batch)
			return
		case <-s.shutdownCh:
			s.drainAndFlush(batch)
			return
		case snap := <-s.ch:
			batch = append(batch, snap)
			if len(batch) >= threshold {
				s.writeBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C():
			if len(batch) > 0 {
				s.writeBatch(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *PostgresSink) drainAndFlush(batch []telemetry.MetricsSnapshot) {
	for {
		select {
		case snap := <-s.ch:
			batch = append(batch, snap)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.writeBatch(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (s *PostgresSink) writeBatch(ctx context.Context, batch []telemetry.MetricsSnapshot) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	var components [][]any
	for i, snap := range batch {
		countersJSON, _ := json.Marshal(snap.Counters)
		rows[i] = []any{
			snap.At, snap.ID, int64(snap.Seq),
			snap.System.CPUPercent, snap.System.HeapUsedMB, snap.System.HeapUsedPercent,
			snap.System.Threads, string(snap.System.Status),
			snap.Errors.TotalErrors, snap.Errors.CriticalErrors,
			snap.Requests, snap.ErrorRate, countersJSON,
		}
		for cat, m := range snap.Components {
			components = append(components, []any{
				snap.At, snap.ID, string(cat), m.Count, m.AverageMillis(),
				float64(m.MaxDuration.Microseconds()) / 1000.0,
			})
		}
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"telemetry_snapshots"},
		snapshotColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		s.logger.Error("failed to write snapshot batch", slog.String("error", err.Error()))
		return
	}

	if len(components) == 0 {
		return
	}
	_, err = s.db.CopyFrom(ctx,
		pgx.Identifier{"component_metrics"},
		componentColumns,
		pgx.CopyFromRows(components),
	)
	if err != nil {
		s.logger.Error("failed to write component metrics batch", slog.String("error", err.Error()))
	}
}

// HealthIndicator pings the export database.
func (s *PostgresSink) HealthIndicator() health.Indicator {
	return health.IndicatorFunc(func(ctx context.Context) (health.Result, error) {
		if err := s.db.Ping(ctx); err != nil {
			return health.Result{}, fmt.Errorf("failed to ping export database: %w", err)
		}
		return health.Up("export database reachable").
			WithDetail("buffered", len(s.ch)), nil
	})
}
