// Package content owns the static quiz dataset: a catalog bundles one quiz
// (questions with lettered, point-carrying options) together with the
// archetype metadata table the result presentation looks names and traits up
// in. Catalogs are loaded from the embedded default, from a JSON file, or
// from a database row, validated at the boundary, and treated as immutable
// afterwards.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"totem-quiz/internal/domain"
)

// MaxOptionsPerQuestion bounds the lettered option set of a question.
// Letters beyond "F" are never valid selections.
const MaxOptionsPerQuestion = 6

// Catalog is one complete content document: the quiz plus the archetype
// table keyed by the same identifiers the option point maps use.
type Catalog struct {
	ID         string             `json:"id"`
	Quiz       domain.Quiz        `json:"quiz"`
	Archetypes []domain.Archetype `json:"archetypes"`
}

// Question returns the quiz question with the given ID, if present.
func (c Catalog) Question(id string) (domain.Question, bool) {
	return c.Quiz.Question(id)
}

// Archetype returns the archetype metadata for an identifier, if present.
func (c Catalog) Archetype(id string) (domain.Archetype, bool) {
	for _, a := range c.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Archetype{}, false
}

// OrderedQuestions returns the questions sorted by position. The catalog
// itself is not modified.
func (c Catalog) OrderedQuestions() []domain.Question {
	out := make([]domain.Question, len(c.Quiz.Questions))
	copy(out, c.Quiz.Questions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// ParseCatalog decodes a catalog document from JSON. Unknown fields are
// rejected so content typos surface as load errors instead of silently
// empty questions.
func ParseCatalog(data []byte) (Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

// MarshalCatalog encodes a catalog in the same document format ParseCatalog
// accepts.
func MarshalCatalog(c Catalog) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}
