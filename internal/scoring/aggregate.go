package scoring

import (
	"math"
	"sort"

	"totem-quiz/internal/domain"
)

// dampingBaseline is the answered-question count at which the completion
// factor saturates at 1.0. Below it, totals are damped proportionally.
const dampingBaseline = 10

// aggregate folds a validated response list into one score per archetype.
//
// Skipped and unknown responses are left out entirely: they do not add
// points and do not register archetypes, even when their points mapping is
// non-empty. Every other response counts as answered, including ones with an
// empty points mapping.
//
// Scores come back in the order archetypes were first seen. Within a single
// response, archetypes register in sorted name order, so the output order is
// a pure function of the response list.
func aggregate(responses []domain.Response) []domain.ArchetypeScore {
	totals := make(map[string]float64)
	order := make([]string, 0, 16)
	answered := 0

	for _, r := range responses {
		if !r.Answered() {
			continue
		}
		answered++

		for _, name := range sortedArchetypes(r.Points) {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name] += r.Points[name]
		}
	}

	factor := completionFactor(answered)

	scores := make([]domain.ArchetypeScore, 0, len(order))
	for _, name := range order {
		scores = append(scores, domain.ArchetypeScore{
			Archetype:   name,
			TotalPoints: int(math.Round(totals[name] * factor)),
			Categories:  map[string]int{},
			Confidence:  factor,
		})
	}
	return scores
}

// completionFactor maps the answered count to the damping factor in [0, 1].
func completionFactor(answered int) float64 {
	factor := float64(answered) / dampingBaseline
	if factor > 1 {
		factor = 1
	}
	return factor
}

// sortedArchetypes returns the archetype names of a points mapping in sorted
// order.
func sortedArchetypes(points domain.Points) []string {
	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
