package content

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"totem-quiz/internal/domain"
)

// ValidationError lists every problem found in a catalog document. Unlike
// response validation, catalog validation does not stop at the first
// problem; content authors get the full list in one pass.
type ValidationError struct {
	Catalog  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog %q is invalid: %s", e.Catalog, strings.Join(e.Problems, "; "))
}

// ValidateCatalog checks a catalog document against the content invariants:
// non-empty quiz with unique question IDs and positions, per-question option
// sets with unique single letters in A-F, finite non-negative point values,
// and an archetype table covering every identifier the options award points
// to. Returns a *ValidationError carrying all problems, or nil.
func ValidateCatalog(c Catalog) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.ID == "" {
		add("catalog id is empty")
	}
	if c.Quiz.ID == "" {
		add("quiz id is empty")
	}
	if c.Quiz.Title == "" {
		add("quiz title is empty")
	}

	known := make(map[string]bool, len(c.Archetypes))
	archetypeIDs := make(map[string]bool, len(c.Archetypes))
	if len(c.Archetypes) == 0 {
		add("archetype table is empty")
	}
	for i, a := range c.Archetypes {
		if a.ID == "" {
			add("archetype %d: id is empty", i)
			continue
		}
		if archetypeIDs[a.ID] {
			add("archetype %q: duplicate id", a.ID)
		}
		archetypeIDs[a.ID] = true
		known[a.ID] = true
		if a.Name == "" {
			add("archetype %q: name is empty", a.ID)
		}
	}

	if len(c.Quiz.Questions) == 0 {
		add("quiz has no questions")
	}

	questionIDs := make(map[string]bool, len(c.Quiz.Questions))
	positions := make(map[int]string, len(c.Quiz.Questions))
	for i, q := range c.Quiz.Questions {
		label := q.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			add("question %s: id is empty", label)
		} else if questionIDs[q.ID] {
			add("question %q: duplicate id", q.ID)
		}
		questionIDs[q.ID] = true

		if q.Text == "" {
			add("question %s: text is empty", label)
		}
		if q.Category == "" {
			add("question %s: category is empty", label)
		}
		if q.Position < 1 {
			add("question %s: position %d is not positive", label, q.Position)
		} else if other, dup := positions[q.Position]; dup {
			add("question %s: position %d already used by %q", label, q.Position, other)
		} else {
			positions[q.Position] = q.ID
		}

		validateOptions(label, q, known, add)
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Catalog: c.ID, Problems: problems}
}

func validateOptions(label string, q domain.Question, known map[string]bool, add func(string, ...any)) {
	if len(q.Options) == 0 {
		add("question %s: no options", label)
		return
	}
	if len(q.Options) > MaxOptionsPerQuestion {
		add("question %s: %d options exceeds the maximum of %d", label, len(q.Options), MaxOptionsPerQuestion)
	}

	letters := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if !validOptionLetter(opt.ID) {
			add("question %s: option id %q is not a letter A-F", label, opt.ID)
		} else if letters[opt.ID] {
			add("question %s: duplicate option letter %q", label, opt.ID)
		}
		letters[opt.ID] = true

		if opt.Text == "" {
			add("question %s option %s: text is empty", label, opt.ID)
		}
		for _, name := range sortedPointKeys(opt.Points) {
			v := opt.Points[name]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				add("question %s option %s: points for %q are not finite", label, opt.ID, name)
			} else if v < 0 {
				add("question %s option %s: points for %q are negative", label, opt.ID, name)
			}
			if !known[name] {
				add("question %s option %s: unknown archetype %q", label, opt.ID, name)
			}
		}
	}
}

func validOptionLetter(id string) bool {
	return len(id) == 1 && id[0] >= 'A' && id[0] <= 'F'
}

// sortedPointKeys keeps problem order reproducible across runs.
func sortedPointKeys(points domain.Points) []string {
	keys := make([]string, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
