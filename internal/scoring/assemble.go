package scoring

import (
	"math"

	"totem-quiz/internal/domain"
)

// assumedQuestionCount is the quiz length the answered/skipped counts in the
// result are derived from. The published quizzes all have 15 questions and
// downstream consumers of the result rely on the two counts summing to 15,
// so the derivation uses this fixed length rather than the size of the
// response list.
const assumedQuestionCount = 15

// assemble builds the final result from the ranked scores. The runner-up is
// reported only when it is a genuine contender, meaning its total reaches
// the configured fraction of the winning total.
func assemble(primary domain.ArchetypeScore, secondary *domain.ArchetypeScore, level domain.ConfidenceLevel, cfg Config) domain.QuizResult {
	result := domain.QuizResult{
		Primary:    primary,
		Confidence: level,
	}

	if secondary != nil && float64(secondary.TotalPoints) >= float64(primary.TotalPoints)*cfg.SecondaryThreshold {
		result.Secondary = secondary
	}

	answered := int(math.Round(primary.Confidence * assumedQuestionCount))
	result.QuestionsAnswered = answered
	result.QuestionsSkipped = assumedQuestionCount - answered

	return result
}
