package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"berry_buddy/pkg/logx"
)

// Postgres opens the pool lazily: an unreachable server does not stop the
// process, it fails the requests and the readiness probe instead.
type Postgres struct {
	value           *sqlx.DB
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	init            sync.Once
}

func (p *Postgres) Client(ctx context.Context) *sqlx.DB {
	p.init.Do(func() {
		p.value = lo.Must(sqlx.Open("pgx", p.DSN))

		p.value.SetMaxOpenConns(p.MaxOpenConns)
		p.value.SetMaxIdleConns(p.MaxIdleConns)
		p.value.SetConnMaxLifetime(p.ConnMaxLifetime)

		if err := p.value.PingContext(ctx); err != nil {
			logger(ctx).Warn("postgres is not reachable yet", p.attrs(), logx.Error(err))

			return
		}

		logger(ctx).Info("postgres connected", p.attrs())
	})

	return p.value
}

// Ping is the readiness check of the pool.
func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.value.PingContext(ctx); err != nil {
		return fmt.Errorf("db.PingContext: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", p.attrs())
}

// attrs never logs the password: both URL and key=value DSNs are parsed.
func (p *Postgres) attrs() slog.Attr {
	cfg, err := pgx.ParseConfig(p.DSN)
	if err != nil {
		return slog.Group("postgres")
	}

	return slog.Group("postgres",
		slog.String("host", cfg.Host),
		slog.Int("port", int(cfg.Port)),
		slog.String("database", cfg.Database),
	)
}
