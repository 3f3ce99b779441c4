package content

import (
	"context"
	"fmt"
	"os"

	"totem-quiz/internal/domain"
)

// StaticLoader serves catalogs from an in-memory map (useful for tests and
// demos).
type StaticLoader struct {
	catalogs map[string]Catalog
}

func NewStaticLoader(catalogs map[string]Catalog) *StaticLoader {
	return &StaticLoader{catalogs: catalogs}
}

func (l *StaticLoader) LoadCatalog(_ context.Context, id string) (Catalog, error) {
	if c, ok := l.catalogs[id]; ok {
		return c, nil
	}
	return Catalog{}, domain.ErrCatalogNotFound
}

// FileLoader reads one catalog document from disk, for running with content
// other than the embedded default.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) LoadCatalog(_ context.Context, id string) (Catalog, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog file %s: %w", l.path, err)
	}
	if c.ID != id {
		return Catalog{}, domain.ErrCatalogNotFound
	}
	return c, nil
}
