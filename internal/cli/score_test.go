package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"totem-quiz/internal/config"
	"totem-quiz/internal/domain"
	"totem-quiz/internal/scoring"
)

func TestRunScoreJSON(t *testing.T) {
	responses := make([]domain.Response, 0, 10)
	for i := 0; i < 10; i++ {
		responses = append(responses, domain.Response{
			QuestionID: fmt.Sprintf("q%02d", i+1),
			Selected:   "A",
			Points:     domain.Points{"wolf": 3},
		})
	}
	input := writeResponses(t, responses)

	var out bytes.Buffer
	if err := runScore(context.Background(), config.Default(), input, "json", &out); err != nil {
		t.Fatalf("score: %v", err)
	}

	var result domain.QuizResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if result.Primary.Archetype != "wolf" || result.Primary.TotalPoints != 30 {
		t.Fatalf("unexpected primary: %+v", result.Primary)
	}
	if result.Confidence != domain.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %s", result.Confidence)
	}
	if result.QuestionsAnswered != 15 || result.QuestionsSkipped != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
}

func TestRunScoreText(t *testing.T) {
	input := writeResponses(t, []domain.Response{
		{QuestionID: "q01", Selected: "A", Points: domain.Points{"wolf": 3}},
	})

	var out bytes.Buffer
	if err := runScore(context.Background(), config.Default(), input, "text", &out); err != nil {
		t.Fatalf("score: %v", err)
	}
	// the embedded catalog supplies the archetype metadata
	if !strings.Contains(out.String(), "Wolf") {
		t.Fatalf("expected wolf card, got:\n%s", out.String())
	}
}

func TestRunScoreValidationFailure(t *testing.T) {
	input := writeResponses(t, []domain.Response{
		{QuestionID: "", Selected: "A", Points: domain.Points{"wolf": 1}},
	})

	var out bytes.Buffer
	err := runScore(context.Background(), config.Default(), input, "json", &out)
	var verr *scoring.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if verr.Index != 0 || verr.Field != "questionId" {
		t.Fatalf("unexpected validation error: %+v", verr)
	}
}

func TestRunScoreUnknownFormat(t *testing.T) {
	input := writeResponses(t, []domain.Response{
		{QuestionID: "q01", Selected: "A", Points: domain.Points{"wolf": 1}},
	})

	var out bytes.Buffer
	err := runScore(context.Background(), config.Default(), input, "yaml", &out)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func writeResponses(t *testing.T, responses []domain.Response) string {
	t.Helper()
	data, err := json.Marshal(responses)
	if err != nil {
		t.Fatalf("marshal responses: %v", err)
	}
	path := filepath.Join(t.TempDir(), "responses.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write responses: %v", err)
	}
	return path
}
