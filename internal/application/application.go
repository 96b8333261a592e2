package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"berry_buddy/internal/config"
	"berry_buddy/internal/domain/service/auth"
	"berry_buddy/internal/domain/service/berries"
	"berry_buddy/internal/domain/service/photos"
	"berry_buddy/internal/domain/service/prices"
	"berry_buddy/internal/domain/service/profiles"
	"berry_buddy/internal/domain/service/reviews"
	"berry_buddy/internal/domain/service/vendors"
	"berry_buddy/internal/infrastructure/gotrue"
	"berry_buddy/internal/infrastructure/persistence"
	"berry_buddy/internal/infrastructure/storage"
	"berry_buddy/internal/server"
	"berry_buddy/pkg/application/connectors"
	"berry_buddy/pkg/application/modules"
	"berry_buddy/pkg/httpx"
	"berry_buddy/pkg/logx"
	"berry_buddy/pkg/metrics"
	"berry_buddy/pkg/middlewarex"
	"berry_buddy/pkg/probe"
)

// Run wires the API from cfg and serves it until ctx is done. Backends that
// are not configured are skipped; the routes needing them answer CONFIG_ERROR.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	g, ctx := errgroup.WithContext(ctx)

	// 1. Database
	var (
		db     *sqlx.DB
		checks []probe.Check
	)

	if cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db = pg.Client(ctx)
		defer pg.Close(context.WithoutCancel(ctx))

		checks = append(checks, probe.Check{Name: "postgres", Probe: pg.Ping})
	} else {
		logger(ctx).Warn("PG_DSN is not set, data routes are disabled")
	}

	// 2. Activity notifications
	activities, err := newActivityDelivery(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newActivityDelivery: %w", err)
	}

	defer activities.close(context.WithoutCancel(ctx))

	checks = append(checks, activities.checks()...)

	// 3. Services
	httpOpts := []httpx.Option{
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(cfg.App.LogFieldMaxLen),
	}

	authService := newAuthService(cfg.Supabase, httpOpts)

	photoStorage, err := newPhotoStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newPhotoStorage: %w", err)
	}

	vendorRepo := persistence.NewVendorRepository(db)
	reviewRepo := persistence.NewReviewRepository(db)
	priceRepo := persistence.NewPriceRepository(db)
	photoRepo := persistence.NewPhotoRepository(db)

	srv := server.NewServer(
		authService,
		server.Backends{
			Database: db != nil,
			OTP:      cfg.Supabase.OTPEnabled(),
			Storage:  photoStorage != nil,
		},
		server.NewHealthServer(nil),
		server.NewAuthServer(authService),
		server.NewBerryServer(berries.NewService(persistence.NewBerryRepository(db))),
		server.NewVendorServer(vendors.NewService(vendorRepo, reviewRepo, priceRepo, photoRepo)),
		server.NewProfileServer(profiles.NewService(persistence.NewProfileRepository(db))),
		server.NewPriceServer(prices.NewService(priceRepo, activities.publisher)),
		server.NewReviewServer(reviews.NewService(reviewRepo, activities.publisher)),
		server.NewPhotoServer(photos.NewService(photoRepo, photoStorage, activities.publisher)),
	)

	// 4. Modules
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, newHTTPServer(ctx, cfg, srv, registry))

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsAddress, Gatherer: registry}.Run(ctx, g)

	activities.run(ctx, g, cfg)

	logger(ctx).Info(
		"application started",
		slog.Bool("database", db != nil),
		slog.Bool("otp", cfg.Supabase.OTPEnabled()),
		slog.Bool("storage", photoStorage != nil),
		slog.String("notifications", activities.mode.String()),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

func newHTTPServer(
	ctx context.Context,
	cfg config.Config,
	srv server.Server,
	registerer prometheus.Registerer,
) *http.Server {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		metrics.NewHTTPMetrics(registerer).Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Authorization", "Content-Type", "X-Trace-Id"},
			ExposedHeaders: []string{"X-Trace-Id"},
		}),
		middlewarex.RequestLogging(masker, cfg.App.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.App.LogFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// newAuthService verifies bearer tokens locally when the JWT secret is known
// and through the auth service otherwise.
func newAuthService(cfg config.Supabase, opts []httpx.Option) *auth.Service {
	var (
		otp   auth.OTPProvider
		users auth.UserProvider
	)

	if cfg.OTPEnabled() {
		otp = gotrue.NewClient(cfg.BaseURL(), cfg.PublishableKey, opts...)
	}

	if cfg.UserLookupEnabled() {
		users = gotrue.NewClient(cfg.BaseURL(), cfg.SecretKey, opts...)
	}

	return auth.NewService(otp, users, cfg.JWTSecret)
}

// newPhotoStorage returns nil when no storage credentials are configured.
func newPhotoStorage(ctx context.Context, cfg config.Config) (photos.Storage, error) {
	if !cfg.Storage.Enabled() {
		logger(ctx).Warn("storage credentials are not set, photo upload is disabled")

		return nil, nil //nolint:nilnil
	}

	// Public object URLs are built from the project URL.
	if cfg.Supabase.URL == "" {
		logger(ctx).Warn("SUPABASE_URL is not set, photo upload is disabled")

		return nil, nil //nolint:nilnil
	}

	s3, err := storage.NewS3(ctx, storage.Options{
		Endpoint:        cfg.Storage.EndpointFor(cfg.Supabase),
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Bucket:          cfg.Storage.Bucket,
		PublicBaseURL:   cfg.Supabase.BaseURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("storage.NewS3: %w", err)
	}

	return s3, nil
}
