// Command notesctl runs operator tasks against the notes database:
// schema migrations, tag reference reconciliation and trash purges.
// It is intended to be invoked by hand or from cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/notekeeper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notekeeper-backend/internal/app"
	"github.com/heartmarshall/notekeeper-backend/internal/config"
	"github.com/heartmarshall/notekeeper-backend/pkg/ctxutil"
)

func main() {
	cmd := &cli.Command{
		Name:  "notesctl",
		Usage: "Operator commands for the notes service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default $CONFIG_PATH or ./config.yaml)",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			reconcileCommand(),
			emptyTrashCommand(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args)
	stop()
	if err != nil {
		slog.Error("notesctl failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func migrateCommand() *cli.Command {
	withMigrator := func(fn func(context.Context, *postgres.Migrator, *slog.Logger) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.Root().String("config"))
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(ctx, m, logger)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator, log *slog.Logger) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					log.Info("migrations applied", slog.Any("versions", applied))
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back the most recent migration",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator, log *slog.Logger) error {
					rolled, err := m.Down(ctx)
					if err != nil {
						return err
					}
					log.Info("migration rolled back", slog.Any("versions", rolled))
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "Print the current schema version",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator, _ *slog.Logger) error {
					v, err := m.Version(ctx)
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				}),
			},
		},
	}
}

func reconcileCommand() *cli.Command {
	return &cli.Command{
		Name:  "reconcile-tags",
		Usage: "Retry pending tag cleanups and strip references to deleted tags",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "batch",
				Usage: "Pending cleanups fetched per round",
				Value: 100,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withServices(ctx, cmd, func(ctx context.Context, svcs *app.Services, log *slog.Logger) error {
				report, err := svcs.Tags.ReconcileTagReferences(ctx, int(cmd.Int("batch")))
				if err != nil {
					return err
				}
				if report.Pending > 0 {
					log.Warn("tag cleanups still pending", slog.Int("pending", report.Pending))
				}
				return nil
			})
		},
	}
}

func emptyTrashCommand() *cli.Command {
	return &cli.Command{
		Name:  "empty-trash",
		Usage: "Permanently delete every trashed note of one owner",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner id (UUID)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ownerID, err := uuid.Parse(cmd.String("owner"))
			if err != nil || ownerID == uuid.Nil {
				return fmt.Errorf("invalid --owner %q", cmd.String("owner"))
			}

			return withServices(ctx, cmd, func(ctx context.Context, svcs *app.Services, log *slog.Logger) error {
				n, err := svcs.Notes.EmptyTrash(ctxutil.WithOwnerID(ctx, ownerID))
				if err != nil {
					return err
				}
				log.Info("trash emptied",
					slog.String("owner_id", ownerID.String()),
					slog.Int64("deleted", n),
				)
				return nil
			})
		},
	}
}

func withServices(
	ctx context.Context,
	cmd *cli.Command,
	fn func(context.Context, *app.Services, *slog.Logger) error,
) error {
	cfg, err := config.Load(cmd.Root().String("config"))
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, app.NewServices(cfg, logger, pool), logger)
}
