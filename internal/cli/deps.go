package cli

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"totem-quiz/internal/app"
	"totem-quiz/internal/config"
	"totem-quiz/internal/content"
	"totem-quiz/internal/infra/memory"
	pgloader "totem-quiz/internal/infra/postgres"
	redisinfra "totem-quiz/internal/infra/redis"
	"totem-quiz/internal/scoring"
)

// activeCatalogID resolves the catalog the CLI should serve. When a content
// file is configured without an explicit catalog id, the id comes from the
// file itself.
func activeCatalogID(cfg config.Config) (string, error) {
	if cfg.Content.Catalog != "" {
		return cfg.Content.Catalog, nil
	}
	if cfg.Content.Path != "" {
		data, err := os.ReadFile(cfg.Content.Path)
		if err != nil {
			return "", err
		}
		c, err := content.ParseCatalog(data)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	}
	return content.DefaultCatalogID, nil
}

// buildService assembles the quiz service from config: embedded content by
// default, a catalog file or Postgres when configured, and Redis-backed
// caching and sessions when an address is set. The returned closer releases
// whatever connections were opened.
func buildService(ctx context.Context, cfg config.Config) (*app.QuizService, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		var err error
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
	}

	var loader memory.CatalogLoader = content.NewEmbeddedLoader()
	if cfg.Content.Path != "" {
		loader = content.NewFileLoader(cfg.Content.Path)
	}
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)
	var catalogs app.ContentRepository
	if redisClient != nil {
		catalogs = redisinfra.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
	}

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 30*time.Minute)
	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore(sessionTTL)
	}

	engine, err := scoring.NewEngine(cfg.Scoring)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	catalogID, err := activeCatalogID(cfg)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	return app.NewQuizService(catalogs, sessions, engine, catalogID), closeAll, nil
}

// loadActiveCatalog fetches the configured catalog without touching Redis or
// session state, for commands that only read content.
func loadActiveCatalog(ctx context.Context, cfg config.Config) (content.Catalog, func(), error) {
	noop := func() {}

	id, err := activeCatalogID(cfg)
	if err != nil {
		return content.Catalog{}, noop, err
	}

	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return content.Catalog{}, noop, err
		}
		c, err := pgloader.NewCatalogLoader(pool).LoadCatalog(ctx, id)
		if err != nil {
			pool.Close()
			return content.Catalog{}, noop, err
		}
		return c, pool.Close, nil
	}

	if cfg.Content.Path != "" {
		c, err := content.NewFileLoader(cfg.Content.Path).LoadCatalog(ctx, id)
		return c, noop, err
	}

	c, err := content.NewEmbeddedLoader().LoadCatalog(ctx, id)
	return c, noop, err
}
