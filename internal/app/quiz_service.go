// Package app contains the quiz use cases: starting a session, recording
// answers against the catalog's questions, and completing the session
// through the scoring engine. Storage and presentation stay behind the
// repository interfaces defined here.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"totem-quiz/internal/content"
	"totem-quiz/internal/domain"
	"totem-quiz/internal/scoring"
)

// SessionRepository abstracts how quiz sessions are stored (in-memory,
// Redis, etc). Implementations own expiry; Get on a missing or expired
// session fails with domain.ErrSessionNotFound.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

// ContentRepository loads catalog content (from cache/backing store).
type ContentRepository interface {
	GetCatalog(ctx context.Context, id string) (content.Catalog, error)
}

// Progress summarizes how far through the quiz a session is.
type Progress struct {
	Recorded  int  `json:"recorded"`
	Answered  int  `json:"answered"`
	Skipped   int  `json:"skipped"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

// QuizService contains the quiz-taking use cases for one catalog.
type QuizService struct {
	catalogID string
	content   ContentRepository
	sessions  SessionRepository
	engine    *scoring.Engine
}

func NewQuizService(contentRepo ContentRepository, sessions SessionRepository, engine *scoring.Engine, catalogID string) *QuizService {
	return &QuizService{
		catalogID: catalogID,
		content:   contentRepo,
		sessions:  sessions,
		engine:    engine,
	}
}

// Catalog returns the active content document.
func (s *QuizService) Catalog(ctx context.Context) (content.Catalog, error) {
	return s.content.GetCatalog(ctx, s.catalogID)
}

// Quiz returns the active quiz with its questions in position order.
func (s *QuizService) Quiz(ctx context.Context) (domain.Quiz, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return domain.Quiz{}, err
	}
	quiz := cat.Quiz
	quiz.Questions = cat.OrderedQuestions()
	return quiz, nil
}

// Start creates a fresh session for the active quiz. The catalog is loaded
// first so a session can never exist for unknown content.
func (s *QuizService) Start(ctx context.Context) (*Session, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	session := NewSession(uuid.NewString(), cat.Quiz.ID)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// Answer records one selection. A letter must name an option actually
// present on that question; its points mapping is copied onto the response.
// The skip and unknown markers are always accepted and carry no points.
func (s *QuizService) Answer(ctx context.Context, sessionID, questionID, selected string) error {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cat, err := s.Catalog(ctx)
	if err != nil {
		return err
	}
	question, ok := cat.Question(questionID)
	if !ok {
		return domain.ErrQuestionNotFound
	}

	points := domain.Points{}
	if selected != domain.SelectionSkip && selected != domain.SelectionUnknown {
		option, ok := question.Option(selected)
		if !ok {
			return domain.ErrOptionNotFound
		}
		points = option.Points
	}

	if err := session.Record(questionID, selected, points); err != nil {
		return err
	}
	return s.sessions.Save(ctx, session)
}

// Progress reports the session's position against the quiz length.
func (s *QuizService) Progress(ctx context.Context, sessionID string) (Progress, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return Progress{}, err
	}
	cat, err := s.Catalog(ctx)
	if err != nil {
		return Progress{}, err
	}

	recorded, answered, skipped := session.Counts()
	return Progress{
		Recorded:  recorded,
		Answered:  answered,
		Skipped:   skipped,
		Total:     len(cat.Quiz.Questions),
		Completed: session.Completed(),
	}, nil
}

// Complete scores the session's responses exactly once and persists the
// frozen session. Responses are handed to the engine in question order;
// scoring failures leave the session open.
func (s *QuizService) Complete(ctx context.Context, sessionID string) (domain.QuizResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	cat, err := s.Catalog(ctx)
	if err != nil {
		return domain.QuizResult{}, err
	}

	result, err := session.Complete(func(responses []domain.Response) (domain.QuizResult, error) {
		return s.engine.Compute(orderResponses(cat, responses))
	})
	if err != nil {
		return domain.QuizResult{}, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domain.QuizResult{}, fmt.Errorf("save session: %w", err)
	}
	return result, nil
}

// Result returns the cached result of a completed session.
func (s *QuizService) Result(ctx context.Context, sessionID string) (domain.QuizResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.QuizResult{}, err
	}
	return session.Result()
}

// Abandon discards a session and everything recorded in it.
func (s *QuizService) Abandon(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// orderResponses arranges responses in the quiz's question order. Responses
// for questions the catalog no longer carries keep their recorded order at
// the end, so a content change between answering and scoring never loses an
// answer.
func orderResponses(cat content.Catalog, responses []domain.Response) []domain.Response {
	byQuestion := make(map[string]domain.Response, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}

	ordered := make([]domain.Response, 0, len(responses))
	seen := make(map[string]bool, len(responses))
	for _, q := range cat.OrderedQuestions() {
		if r, ok := byQuestion[q.ID]; ok {
			ordered = append(ordered, r)
			seen[q.ID] = true
		}
	}
	for _, r := range responses {
		if !seen[r.QuestionID] {
			ordered = append(ordered, r)
		}
	}
	return ordered
}

// ResponseAt builds the response value an option selection would record,
// without a session. Batch scoring and tests use it to assemble response
// lists straight from catalog content.
func ResponseAt(q domain.Question, selected string, at time.Time) (domain.Response, error) {
	points := domain.Points{}
	if selected != domain.SelectionSkip && selected != domain.SelectionUnknown {
		option, ok := q.Option(selected)
		if !ok {
			return domain.Response{}, domain.ErrOptionNotFound
		}
		points = option.Points
	}
	return domain.Response{
		QuestionID: q.ID,
		Selected:   selected,
		Points:     points,
		CreatedAt:  at,
	}, nil
}
