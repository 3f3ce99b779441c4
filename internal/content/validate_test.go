package content

import (
	"errors"
	"math"
	"strings"
	"testing"

	"totem-quiz/internal/domain"
)

func TestValidateCatalogOK(t *testing.T) {
	if err := ValidateCatalog(minimalCatalog()); err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}
}

func TestValidateCatalogProblems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		problem string
	}{
		{
			name:    "empty catalog id",
			mutate:  func(c *Catalog) { c.ID = "" },
			problem: "catalog id is empty",
		},
		{
			name:    "no questions",
			mutate:  func(c *Catalog) { c.Quiz.Questions = nil },
			problem: "quiz has no questions",
		},
		{
			name:    "no archetypes",
			mutate:  func(c *Catalog) { c.Archetypes = nil },
			problem: "archetype table is empty",
		},
		{
			name: "duplicate question id",
			mutate: func(c *Catalog) {
				q := c.Quiz.Questions[0]
				q.Position = 99
				c.Quiz.Questions = append(c.Quiz.Questions, q)
			},
			problem: "duplicate id",
		},
		{
			name: "duplicate position",
			mutate: func(c *Catalog) {
				q := c.Quiz.Questions[0]
				q.ID = "q99"
				c.Quiz.Questions = append(c.Quiz.Questions, q)
			},
			problem: "already used",
		},
		{
			name:    "non-positive position",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Position = 0 },
			problem: "not positive",
		},
		{
			name:    "bad option letter",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Options[0].ID = "G" },
			problem: "not a letter A-F",
		},
		{
			name:    "lowercase option letter",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Options[0].ID = "a" },
			problem: "not a letter A-F",
		},
		{
			name: "duplicate option letter",
			mutate: func(c *Catalog) {
				q := &c.Quiz.Questions[0]
				q.Options = append(q.Options, q.Options[0])
			},
			problem: "duplicate option letter",
		},
		{
			name: "too many options",
			mutate: func(c *Catalog) {
				q := &c.Quiz.Questions[0]
				for _, id := range []string{"B", "C", "D", "E", "F", "A"} {
					q.Options = append(q.Options, domain.AnswerOption{ID: id, Text: "x", Points: domain.Points{"wolf": 1}})
				}
			},
			problem: "exceeds the maximum",
		},
		{
			name:    "negative points",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Options[0].Points["wolf"] = -1 },
			problem: "negative",
		},
		{
			name:    "non-finite points",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Options[0].Points["wolf"] = math.NaN() },
			problem: "not finite",
		},
		{
			name:    "unknown archetype",
			mutate:  func(c *Catalog) { c.Quiz.Questions[0].Options[0].Points["unicorn"] = 3 },
			problem: `unknown archetype "unicorn"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimalCatalog()
			tt.mutate(&c)

			err := ValidateCatalog(c)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !containsProblem(verr.Problems, tt.problem) {
				t.Fatalf("expected problem containing %q, got %v", tt.problem, verr.Problems)
			}
		})
	}
}

func TestValidateCatalogCollectsAll(t *testing.T) {
	c := minimalCatalog()
	c.ID = ""
	c.Quiz.Title = ""
	c.Quiz.Questions[0].Options[0].ID = "Z"

	err := ValidateCatalog(c)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Problems) < 3 {
		t.Fatalf("expected all problems reported, got %v", verr.Problems)
	}
}

func containsProblem(problems []string, want string) bool {
	for _, p := range problems {
		if strings.Contains(p, want) {
			return true
		}
	}
	return false
}

func minimalCatalog() Catalog {
	return Catalog{
		ID: "test-catalog",
		Quiz: domain.Quiz{
			ID:    "test-quiz",
			Title: "Test Quiz",
			Questions: []domain.Question{
				{
					ID:       "q1",
					Text:     "First?",
					Category: "general",
					Position: 1,
					Options: []domain.AnswerOption{
						{ID: "A", Text: "Yes", Points: domain.Points{"wolf": 3}},
						{ID: "B", Text: "No", Points: domain.Points{"fox": 3}},
					},
				},
				{
					ID:       "q2",
					Text:     "Second?",
					Category: "general",
					Position: 2,
					Options: []domain.AnswerOption{
						{ID: "A", Text: "Yes", Points: domain.Points{"wolf": 2, "fox": 1}},
						{ID: "B", Text: "No", Points: domain.Points{}},
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
