package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"totem-quiz/internal/app"
	"totem-quiz/internal/content"
	"totem-quiz/internal/domain"
	"totem-quiz/internal/infra/memory"
	"totem-quiz/internal/scoring"
)

func TestRunPlayFullGame(t *testing.T) {
	service := newPlayService(t)
	in := strings.NewReader("x\nA\ns\nu\n")
	var out bytes.Buffer

	if err := runPlay(context.Background(), service, in, &out); err != nil {
		t.Fatalf("play: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Which Animal?") {
		t.Fatalf("expected quiz title, got:\n%s", text)
	}
	if !strings.Contains(text, "Please answer A/B, s, u or q.") {
		t.Fatalf("expected reprompt after bad input, got:\n%s", text)
	}
	if !strings.Contains(text, "🐺 Wolf") {
		t.Fatalf("expected wolf result card, got:\n%s", text)
	}
	if !strings.Contains(text, "Confidence: low, 2 answered, 13 skipped") {
		t.Fatalf("expected confidence line, got:\n%s", text)
	}
	if !strings.Contains(text, `Share: I got Wolf 🐺 on "Which Animal?" - what's yours?`) {
		t.Fatalf("expected share line, got:\n%s", text)
	}
}

func TestRunPlayQuit(t *testing.T) {
	service := newPlayService(t)
	in := strings.NewReader("A\nq\n")
	var out bytes.Buffer

	if err := runPlay(context.Background(), service, in, &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "Quiz abandoned.") {
		t.Fatalf("expected abandon notice, got:\n%s", out.String())
	}
}

func TestRunPlayEOFAbandons(t *testing.T) {
	service := newPlayService(t)
	var out bytes.Buffer

	if err := runPlay(context.Background(), service, strings.NewReader(""), &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out.String(), "Quiz abandoned.") {
		t.Fatalf("expected abandon notice on EOF, got:\n%s", out.String())
	}
}

func newPlayService(t *testing.T) *app.QuizService {
	t.Helper()
	catalog := playCatalog()
	engine, err := scoring.NewEngine(scoring.DefaultConfig())
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	loader := content.NewStaticLoader(map[string]content.Catalog{catalog.ID: catalog})
	catalogs := memory.NewCatalogRepository(loader, time.Minute)
	sessions := memory.NewSessionStore(time.Minute)
	return app.NewQuizService(catalogs, sessions, engine, catalog.ID)
}

func playCatalog() content.Catalog {
	return content.Catalog{
		ID: "cat-1",
		Quiz: domain.Quiz{
			ID:    "quiz-1",
			Title: "Which Animal?",
			Questions: []domain.Question{
				{ID: "q1", Text: "A free evening means", Category: "social", Position: 1, Options: []domain.AnswerOption{
					{ID: "A", Text: "Rally the group", Points: domain.Points{"wolf": 3}},
					{ID: "B", Text: "Stay in", Points: domain.Points{"deer": 2}},
				}},
				{ID: "q2", Text: "Your desk is", Category: "mind", Position: 2, Options: []domain.AnswerOption{
					{ID: "A", Text: "Organized", Points: domain.Points{"owl": 2}},
				}},
				{ID: "q3", Text: "Decisions are", Category: "instinct", Position: 3, Options: []domain.AnswerOption{
					{ID: "A", Text: "Gut calls", Points: domain.Points{"wolf": 1}},
				}},
			},
		},
		Archetypes: []domain.Archetype{
			{ID: "wolf", Name: "Wolf", Emoji: "🐺", Traits: []string{"loyal"}, Description: "Pack comes first."},
			{ID: "deer", Name: "Deer"},
			{ID: "owl", Name: "Owl"},
		},
	}
}
