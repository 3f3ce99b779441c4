package scoring

import (
	"fmt"
	"math"

	"totem-quiz/internal/domain"
)

// ValidationError reports the first structural problem found in a response
// list. Index is the position of the offending response, or -1 when the
// problem concerns the list as a whole.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid responses: %s", e.Reason)
	}
	return fmt.Sprintf("invalid response at index %d: %s %s", e.Index, e.Field, e.Reason)
}

// validateResponses checks the whole list before any scoring work happens.
// It walks responses in order and fails on the first problem, so the error
// for a given list is always the same.
func validateResponses(responses []domain.Response) error {
	if responses == nil {
		return &ValidationError{Index: -1, Field: "responses", Reason: "response list is missing"}
	}
	if len(responses) == 0 {
		return &ValidationError{Index: -1, Field: "responses", Reason: "response list is empty"}
	}

	for i, r := range responses {
		if r.QuestionID == "" {
			return &ValidationError{Index: i, Field: "questionId", Reason: "must be a non-empty string"}
		}
		if r.Selected == "" {
			return &ValidationError{Index: i, Field: "selected", Reason: "must be a non-empty string"}
		}
		if !allowedSelection(r.Selected) {
			return &ValidationError{
				Index:  i,
				Field:  "selected",
				Reason: fmt.Sprintf("%q is not an option letter A-F, %q, or %q", r.Selected, domain.SelectionSkip, domain.SelectionUnknown),
			}
		}
		if r.Points == nil {
			return &ValidationError{Index: i, Field: "points", Reason: "points mapping is missing"}
		}
		if err := validatePoints(i, r.Points); err != nil {
			return err
		}
	}
	return nil
}

// allowedSelection accepts exactly the single uppercase option letters A
// through F plus the skip and unknown markers. Lowercase letters and
// multi-character strings are rejected.
func allowedSelection(selected string) bool {
	switch selected {
	case domain.SelectionSkip, domain.SelectionUnknown:
		return true
	}
	if len(selected) != 1 {
		return false
	}
	return selected[0] >= 'A' && selected[0] <= 'F'
}

// validatePoints rejects negative and non-finite point values. Keys are
// visited in sorted order so the reported archetype does not depend on map
// iteration order.
func validatePoints(index int, points domain.Points) error {
	for _, k := range sortedArchetypes(points) {
		v := points[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{
				Index:  index,
				Field:  "points",
				Reason: fmt.Sprintf("value for archetype %q is not a finite number", k),
			}
		}
		if v < 0 {
			return &ValidationError{
				Index:  index,
				Field:  "points",
				Reason: fmt.Sprintf("value %v for archetype %q is negative", v, k),
			}
		}
	}
	return nil
}
