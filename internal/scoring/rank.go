package scoring

import (
	"errors"
	"sort"

	"totem-quiz/internal/domain"
)

// ErrNoScores indicates that no response contributed points to any
// archetype, so there is nothing to rank. It happens when every response was
// skipped or unknown, or when every counted response carried an empty points
// mapping.
var ErrNoScores = errors.New("scoring: no archetype scores to rank")

// rank orders scores by total points, highest first, and returns the winner
// plus the runner-up candidate. The sort is stable: archetypes with equal
// totals keep the order the aggregator produced them in. The runner-up is
// nil when only one archetype scored; whether it makes it into the result is
// decided during assembly.
func rank(scores []domain.ArchetypeScore) (domain.ArchetypeScore, *domain.ArchetypeScore, error) {
	if len(scores) == 0 {
		return domain.ArchetypeScore{}, nil, ErrNoScores
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalPoints > scores[j].TotalPoints
	})

	primary := scores[0]
	if len(scores) < 2 {
		return primary, nil, nil
	}

	secondary := scores[1]
	return primary, &secondary, nil
}
