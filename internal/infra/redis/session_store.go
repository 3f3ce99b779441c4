package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"totem-quiz/internal/app"
	"totem-quiz/internal/domain"
)

// SessionStore is a Redis implementation of app.SessionRepository. A session
// is spread over three keys, all sharing the store TTL:
//
//	HSET quiz:session:{id}            quizId {quizID}  order {json array}
//	HSET quiz:session:{id}:responses  {questionID} {response json}
//	SET  quiz:session:{id}:result     {result json}        (completed only)
//
// Every Get and Save refreshes the TTL, so a session stays alive while it is
// being used and evaporates after the configured idle time.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, session *app.Session) error {
	return s.Save(ctx, session)
}

func (s *SessionStore) Save(ctx context.Context, session *app.Session) error {
	responses := session.Responses()

	order := make([]string, 0, len(responses))
	for _, r := range responses {
		order = append(order, r.QuestionID)
	}
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	id := session.ID()
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key(id), "quizId", session.QuizID(), "order", orderJSON)
	for _, r := range responses {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal response %s: %w", r.QuestionID, err)
		}
		pipe.HSet(ctx, s.responsesKey(id), r.QuestionID, data)
	}
	if result, err := session.Result(); err == nil {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		pipe.Set(ctx, s.resultKey(id), data, s.ttl)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(id), s.ttl)
		pipe.Expire(ctx, s.responsesKey(id), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*app.Session, error) {
	meta, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if len(meta) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	var order []string
	if raw, ok := meta["order"]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, fmt.Errorf("unmarshal session %s order: %w", id, err)
		}
	}

	rawResponses, err := s.client.HGetAll(ctx, s.responsesKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s responses: %w", id, err)
	}
	responses := make([]domain.Response, 0, len(rawResponses))
	for _, questionID := range order {
		raw, ok := rawResponses[questionID]
		if !ok {
			continue
		}
		var r domain.Response
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("unmarshal session %s response %s: %w", id, questionID, err)
		}
		responses = append(responses, r)
	}

	var result *domain.QuizResult
	data, err := s.client.Get(ctx, s.resultKey(id)).Bytes()
	switch {
	case err == nil:
		result = &domain.QuizResult{}
		if err := json.Unmarshal(data, result); err != nil {
			return nil, fmt.Errorf("unmarshal session %s result: %w", id, err)
		}
	case errors.Is(err, redis.Nil):
		// not completed yet
	default:
		return nil, fmt.Errorf("load session %s result: %w", id, err)
	}

	s.touch(ctx, id)
	return app.RestoreSession(id, meta["quizId"], responses, result), nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id), s.responsesKey(id), s.resultKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// touch refreshes the TTL on all session keys, best-effort.
func (s *SessionStore) touch(ctx context.Context, id string) {
	if s.ttl <= 0 {
		return
	}
	pipe := s.client.Pipeline()
	pipe.Expire(ctx, s.key(id), s.ttl)
	pipe.Expire(ctx, s.responsesKey(id), s.ttl)
	pipe.Expire(ctx, s.resultKey(id), s.ttl)
	_, _ = pipe.Exec(ctx)
}

func (s *SessionStore) key(id string) string {
	return "quiz:session:" + id
}

func (s *SessionStore) responsesKey(id string) string {
	return "quiz:session:" + id + ":responses"
}

func (s *SessionStore) resultKey(id string) string {
	return "quiz:session:" + id + ":result"
}
