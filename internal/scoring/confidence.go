package scoring

import (
	"totem-quiz/internal/domain"
)

// Score gaps (in damped points) the winner must hold over the runner-up for
// the higher confidence tiers.
const (
	highScoreGap   = 20
	mediumScoreGap = 10
)

// classifyConfidence grades how trustworthy the winning archetype is. A tier
// requires both enough completion (the factor carried on the primary score)
// and enough distance to the runner-up. With no runner-up the distance is
// the primary's own total, so a lone archetype with a tiny total still
// grades low.
func classifyConfidence(primary domain.ArchetypeScore, secondary *domain.ArchetypeScore, cfg Config) domain.ConfidenceLevel {
	factor := primary.Confidence
	gap := scoreDifference(primary, secondary)

	switch {
	case factor >= cfg.HighConfidenceCutoff && gap >= highScoreGap:
		return domain.ConfidenceHigh
	case factor >= cfg.MediumConfidenceCutoff && gap >= mediumScoreGap:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func scoreDifference(primary domain.ArchetypeScore, secondary *domain.ArchetypeScore) int {
	if secondary == nil {
		return primary.TotalPoints
	}
	return primary.TotalPoints - secondary.TotalPoints
}
