package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"totem-quiz/internal/content"
	"totem-quiz/internal/domain"
)

// CatalogLoader loads catalog JSONB from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context, id string) (content.Catalog, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM catalogs WHERE id=$1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return content.Catalog{}, domain.ErrCatalogNotFound
	}
	if err != nil {
		return content.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	c, err := content.ParseCatalog(raw)
	if err != nil {
		return content.Catalog{}, fmt.Errorf("catalog %s: %w", id, err)
	}
	return c, nil
}

// SaveCatalog upserts a catalog document, keyed by its id.
func (l *CatalogLoader) SaveCatalog(ctx context.Context, c content.Catalog) error {
	data, err := content.MarshalCatalog(c)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	_, err = l.pool.Exec(ctx,
		`INSERT INTO catalogs (id, data) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		c.ID, data)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
