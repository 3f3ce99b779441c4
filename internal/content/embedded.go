package content

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"totem-quiz/internal/domain"
)

// DefaultCatalogID names the catalog compiled into the binary.
const DefaultCatalogID = "spirit-animals"

//go:embed catalog/spirit_animals.json
var embeddedCatalog []byte

// EmbeddedLoader serves the catalog compiled into the binary. The document
// is parsed once on first use.
type EmbeddedLoader struct {
	once    sync.Once
	catalog Catalog
	err     error
}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (l *EmbeddedLoader) LoadCatalog(_ context.Context, id string) (Catalog, error) {
	l.once.Do(func() {
		l.catalog, l.err = ParseCatalog(embeddedCatalog)
	})
	if l.err != nil {
		return Catalog{}, fmt.Errorf("embedded catalog: %w", l.err)
	}
	if l.catalog.ID != id {
		return Catalog{}, domain.ErrCatalogNotFound
	}
	return l.catalog, nil
}

// DefaultCatalog parses and returns the embedded catalog.
func DefaultCatalog() (Catalog, error) {
	return NewEmbeddedLoader().LoadCatalog(context.Background(), DefaultCatalogID)
}
