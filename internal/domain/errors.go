package domain

import "errors"

var (
	// ErrCatalogNotFound indicates no catalog exists under the requested ID.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrQuestionNotFound indicates a submitted question ID is not in the quiz.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates a selected letter is not among the
	// question's options.
	ErrOptionNotFound = errors.New("option not found")
	// ErrSessionNotFound is returned when a quiz session does not exist or
	// has expired.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionCompleted is returned when answers arrive after the session
	// was scored.
	ErrSessionCompleted = errors.New("quiz session already completed")
	// ErrSessionNotCompleted is returned when a result is requested before
	// the session was scored.
	ErrSessionNotCompleted = errors.New("quiz session not completed")
)
