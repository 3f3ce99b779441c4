package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"totem-quiz/internal/content"
	"totem-quiz/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: content.NewStaticLoader(map[string]content.Catalog{
			"cat-1": sampleCatalog(),
		}),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	if _, err := repo.GetCatalog(context.Background(), "cat-1"); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background(), "cat-1"); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryExpires(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: content.NewStaticLoader(map[string]content.Catalog{
			"cat-1": sampleCatalog(),
		}),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	now := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	if _, err := repo.GetCatalog(context.Background(), "cat-1"); err != nil {
		t.Fatalf("get catalog: %v", err)
	}

	// past the TTL plus the 10% jitter ceiling
	now = now.Add(2 * time.Minute)
	if _, err := repo.GetCatalog(context.Background(), "cat-1"); err != nil {
		t.Fatalf("get catalog after expiry: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryMiss(t *testing.T) {
	repo := NewCatalogRepository(content.NewStaticLoader(nil), time.Minute)
	if _, err := repo.GetCatalog(context.Background(), "nope"); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, id string) (content.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx, id)
}

func sampleCatalog() content.Catalog {
	return content.Catalog{
		ID: "cat-1",
		Quiz: domain.Quiz{
			ID:    "quiz-1",
			Title: "Sample",
			Questions: []domain.Question{
				{
					ID:       "q1",
					Text:     "Pick one",
					Category: "general",
					Position: 1,
					Options: []domain.AnswerOption{
						{ID: "A", Text: "First", Points: domain.Points{"wolf": 3}},
						{ID: "B", Text: "Second", Points: domain.Points{"fox": 3}},
					},
				},
			},
		},
		Archetypes: []domain.Archetype{
			{ID: "wolf", Name: "Wolf"},
			{ID: "fox", Name: "Fox"},
		},
	}
}
