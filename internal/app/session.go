package app

import (
	"sync"
	"time"

	"totem-quiz/internal/domain"
)

// Session is the ephemeral state of one person taking the quiz: the
// responses recorded so far, in first-answer order, plus the cached result
// once the session has been scored. A completed session is frozen; further
// answers are rejected and the result never changes.
type Session struct {
	id        string
	quizID    string
	createdAt time.Time
	now       func() time.Time

	mu        sync.RWMutex
	responses map[string]domain.Response
	order     []string
	completed bool
	result    domain.QuizResult
}

// NewSession creates an empty session for the given quiz.
func NewSession(id, quizID string) *Session {
	return newSessionWithClock(id, quizID, time.Now)
}

// NewSessionWithClock is test-only for deterministic timestamps.
func NewSessionWithClock(id, quizID string, now func() time.Time) *Session {
	return newSessionWithClock(id, quizID, now)
}

func newSessionWithClock(id, quizID string, now func() time.Time) *Session {
	return &Session{
		id:        id,
		quizID:    quizID,
		createdAt: now(),
		now:       now,
		responses: make(map[string]domain.Response),
	}
}

// RestoreSession rebuilds a session from persisted state. Responses keep the
// order they are given in; a non-nil result marks the session completed.
func RestoreSession(id, quizID string, responses []domain.Response, result *domain.QuizResult) *Session {
	s := NewSession(id, quizID)
	for _, r := range responses {
		s.order = append(s.order, r.QuestionID)
		s.responses[r.QuestionID] = r
	}
	if result != nil {
		s.completed = true
		s.result = *result
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// QuizID returns the quiz this session belongs to.
func (s *Session) QuizID() string { return s.quizID }

// CreatedAt returns the session creation time.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Record stores the response for a question, overwriting any earlier answer
// to the same question while keeping its original position in the answer
// order. Points must already be the copied mapping of the chosen option
// (empty for the skip and unknown markers). Fails with ErrSessionCompleted
// once the session has been scored.
func (s *Session) Record(questionID, selected string, points domain.Points) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return domain.ErrSessionCompleted
	}

	if _, ok := s.responses[questionID]; !ok {
		s.order = append(s.order, questionID)
	}
	copied := make(domain.Points, len(points))
	for k, v := range points {
		copied[k] = v
	}
	s.responses[questionID] = domain.Response{
		QuestionID: questionID,
		Selected:   selected,
		Points:     copied,
		CreatedAt:  s.now(),
	}
	return nil
}

// Response returns the recorded response for a question, if any.
func (s *Session) Response(questionID string) (domain.Response, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.responses[questionID]
	return r, ok
}

// Responses returns a copy of all recorded responses in first-answer order.
func (s *Session) Responses() []domain.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.responsesLocked()
}

func (s *Session) responsesLocked() []domain.Response {
	out := make([]domain.Response, 0, len(s.order))
	for _, questionID := range s.order {
		r := s.responses[questionID]
		points := make(domain.Points, len(r.Points))
		for k, v := range r.Points {
			points[k] = v
		}
		r.Points = points
		out = append(out, r)
	}
	return out
}

// Counts returns how many responses are recorded and how they split into
// answered and skipped (skip or unknown markers).
func (s *Session) Counts() (recorded, answered, skipped int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.responses {
		if r.Answered() {
			answered++
		} else {
			skipped++
		}
	}
	return len(s.responses), answered, skipped
}

// Completed reports whether the session has been scored.
func (s *Session) Completed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

// Complete scores the session exactly once: it hands the recorded responses
// to compute and caches the returned result, freezing the session. A second
// call fails with ErrSessionCompleted; a compute failure leaves the session
// open so the caller can correct the responses and retry.
func (s *Session) Complete(compute func([]domain.Response) (domain.QuizResult, error)) (domain.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return domain.QuizResult{}, domain.ErrSessionCompleted
	}

	result, err := compute(s.responsesLocked())
	if err != nil {
		return domain.QuizResult{}, err
	}

	s.completed = true
	s.result = result
	return result, nil
}

// Result returns the cached result of a completed session, or
// ErrSessionNotCompleted.
func (s *Session) Result() (domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.completed {
		return domain.QuizResult{}, domain.ErrSessionNotCompleted
	}
	return s.result, nil
}
