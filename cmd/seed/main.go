// Command seed inserts the sample article names, the same set the
// admin content screen offers, without going through the HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"stock-admin/internal/domain/entity"
	pgRepo "stock-admin/internal/infra/adapter/persistence/postgres"
	"stock-admin/internal/infra/db"
	"stock-admin/internal/observability/logging"
	"stock-admin/internal/usecase/articlename"
	"stock-admin/pkg/config"
)

func main() {
	migrate := flag.Bool("migrate", true, "apply the schema before seeding")
	actorID := flag.String("actor", "system", "identity recorded as created_by")
	flag.Parse()

	config.MustLoadDotEnv(config.DefaultDotEnvPath)
	logger := logging.NewLogger(logging.ConfigFromEnv())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *actorID, *migrate); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, actorID string, migrate bool) error {
	database, err := db.Open(ctx, os.Getenv("DATABASE_URL"), db.ConnectionConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if migrate {
		if err := db.MigrateUp(database); err != nil {
			return err
		}
	}

	seeder := &articlename.Seeder{
		Repo:    pgRepo.NewArticleNameRepo(database),
		Samples: db.SampleArticleNames,
		Logger:  logger,
	}

	actor := entity.Actor{ID: actorID, Name: "Système", Role: entity.RoleSuperAdmin}
	res, err := seeder.Seed(ctx, actor)
	if err != nil {
		return err
	}
	logger.Info(res.Message, slog.Int("created", res.Created))
	return nil
}
