package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/note"
	tagrepo "github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/notekeeper-backend/internal/auth"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/internal/service/note"
	"github.com/heartmarshall/notekeeper-backend/internal/service/tag"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/middleware"
	"github.com/heartmarshall/notekeeper-backend/internal/transport/rest"
)

// Services bundles the domain services built over one database connection.
type Services struct {
	Notes *note.Service
	Tags  *tag.Service
	// TagRepo is exposed for the health check and operator commands.
	TagRepo *tagrepo.Repo
}

// NewServices wires repositories, the transaction manager and services.
func NewServices(cfg *config.Config, logger *slog.Logger, db postgres.DB) *Services {
	tx := postgres.NewTxManager(db)
	notes := noterepo.New(db)
	tags := tagrepo.New(db)

	return &Services{
		Notes:   note.NewService(logger, notes, tags, tx, cfg.Notes),
		Tags:    tag.NewService(logger, tags, tags, notes, tx, cfg.Tags),
		TagRepo: tags,
	}
}

// Run is the application entry point. It loads configuration from
// configPath (see config.Load), connects to the database, serves HTTP and
// shuts down gracefully on SIGINT/SIGTERM or when ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting notesd", append(buildAttrs(), slog.String("log_level", cfg.Log.Level))...)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svcs := NewServices(cfg, logger, pool)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := NewHandler(cfg, logger, svcs, pool, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// pinger is satisfied by *pgxpool.Pool.
type pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler builds the HTTP handler with the global middleware chain.
// limiter may be nil when rate limiting is disabled.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	svcs *Services,
	db pinger,
	limiter *middleware.RateLimiter,
) http.Handler {
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	mux := rest.NewRouter(rest.Handlers{
		Notes:  rest.NewNoteHandler(svcs.Notes, logger),
		Tags:   rest.NewTagHandler(svcs.Tags, logger),
		Health: rest.NewHealthHandler(db, svcs.TagRepo, BuildVersion()),
	}, middleware.RequireOwner(verifier, logger))

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	// Metrics reads the matched pattern, so it wraps the mux directly.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Metrics(),
	)(mux)
}
