package domain

import "time"

// Selection sentinels. Any other selection marker must be a single option
// letter between "A" and "F".
const (
	// SelectionSkip marks a question the user chose to pass over.
	SelectionSkip = "skip"
	// SelectionUnknown marks a question the user answered "not sure".
	SelectionUnknown = "unknown"
)

// Points maps archetype identifiers to the point values an option awards.
// Archetypes absent from the map contribute zero.
type Points map[string]float64

// AnswerOption is one selectable answer of a question. ID is a single
// letter A-F.
type AnswerOption struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Points Points `json:"points"`
}

// Question is one prompt of the quiz with its ordered option set.
type Question struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Position int            `json:"position"`
	Options  []AnswerOption `json:"options"`
}

// Option returns the option with the given letter, if present.
func (q Question) Option(letter string) (AnswerOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == letter {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

// Quiz is the full question set of one personality quiz.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question returns the question with the given ID, if present.
func (qz Quiz) Question(id string) (Question, bool) {
	for _, q := range qz.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Archetype is the static metadata for one spirit animal. The scoring engine
// never reads this; it works on identifiers only.
type Archetype struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Emoji       string   `json:"emoji,omitempty"`
	Traits      []string `json:"traits,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Response is one recorded answer: either an option selection with the
// option's points copied in, or a skip/unknown sentinel with empty points.
// CreatedAt is informational and ignored by scoring.
type Response struct {
	QuestionID string    `json:"questionId"`
	Selected   string    `json:"selected"`
	Points     Points    `json:"points"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsSkip reports whether the response is the skip sentinel.
func (r Response) IsSkip() bool { return r.Selected == SelectionSkip }

// IsUnknown reports whether the response is the unknown sentinel.
func (r Response) IsUnknown() bool { return r.Selected == SelectionUnknown }

// Answered reports whether the response counts toward scoring, i.e. it is
// neither skip nor unknown.
func (r Response) Answered() bool { return !r.IsSkip() && !r.IsUnknown() }

// ArchetypeScore is the accumulated, damped total for one archetype.
// Categories is reserved for a per-category breakdown; the aggregator leaves
// it empty. Confidence carries the completion damping factor (0.0-1.0)
// applied to this record.
type ArchetypeScore struct {
	Archetype   string         `json:"archetype"`
	TotalPoints int            `json:"totalPoints"`
	Categories  map[string]int `json:"categories"`
	Confidence  float64        `json:"confidence"`
}

// ConfidenceLevel is the coarse trust classification of a quiz result.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// QuizResult is the immutable outcome of scoring one response set.
// Secondary is nil unless the runner-up cleared the secondary threshold.
type QuizResult struct {
	Primary           ArchetypeScore  `json:"primary"`
	Secondary         *ArchetypeScore `json:"secondary,omitempty"`
	Confidence        ConfidenceLevel `json:"confidence"`
	QuestionsAnswered int             `json:"questionsAnswered"`
	QuestionsSkipped  int             `json:"questionsSkipped"`
}
