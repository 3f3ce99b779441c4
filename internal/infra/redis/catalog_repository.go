package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"totem-quiz/internal/content"
)

// CatalogLoader fetches catalog content from a backing store (e.g., document DB).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, id string) (content.Catalog, error)
}

// CatalogRepository caches whole catalog documents in Redis and falls back
// to a loader on cache miss. A catalog is stored as one JSON value:
//
//	SET catalog:{id} {json} EX ttl
//
// The full document round-trips, so a cache hit is equivalent to a load.
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context, id string) (content.Catalog, error) {
	key := r.key(id)

	if catalog, ok := r.cached(ctx, key); ok {
		return catalog, nil
	}

	result, err, _ := r.sf.Do(id, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if catalog, ok := r.cached(ctx, key); ok {
			return catalog, nil
		}

		catalog, err := r.loader.LoadCatalog(ctx, id)
		if err != nil {
			return content.Catalog{}, err
		}

		data, err := json.Marshal(catalog)
		if err != nil {
			return content.Catalog{}, fmt.Errorf("marshal catalog: %w", err)
		}
		// best-effort: a failed cache write only costs the next caller a load
		_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()

		return catalog, nil
	})
	if err != nil {
		return content.Catalog{}, err
	}
	return result.(content.Catalog), nil
}

func (r *CatalogRepository) cached(ctx context.Context, key string) (content.Catalog, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil || len(data) == 0 {
		return content.Catalog{}, false
	}
	var catalog content.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return content.Catalog{}, false
	}
	return catalog, true
}

func (r *CatalogRepository) key(id string) string {
	return "catalog:" + id
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
