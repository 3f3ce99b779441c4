package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"totem-quiz/internal/config"
	"totem-quiz/internal/content"
	pgloader "totem-quiz/internal/infra/postgres"
	pgmigrations "totem-quiz/internal/infra/postgres/migrations"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			if seed {
				return seedCatalog(cmd.Context(), cfg)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "store the active catalog after migrating")
	return cmd
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("migrations applied")
	return nil
}

// seedCatalog validates the file or embedded catalog and upserts it into
// Postgres, so later runs can serve content from the database.
func seedCatalog(ctx context.Context, cfg config.Config) error {
	id, err := activeCatalogID(cfg)
	if err != nil {
		return err
	}

	var catalog content.Catalog
	if cfg.Content.Path != "" {
		catalog, err = content.NewFileLoader(cfg.Content.Path).LoadCatalog(ctx, id)
	} else {
		catalog, err = content.NewEmbeddedLoader().LoadCatalog(ctx, id)
	}
	if err != nil {
		return err
	}
	if err := content.ValidateCatalog(catalog); err != nil {
		return err
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pgloader.NewCatalogLoader(pool).SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	slog.Info("catalog seeded", "catalog", catalog.ID)
	return nil
}
