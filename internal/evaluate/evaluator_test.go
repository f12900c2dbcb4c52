package evaluate

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/quizclash/internal/llm"
	"github.com/abhisek/quizclash/internal/quiz"
)

func sampleBatch() quiz.Batch {
	return quiz.Batch{
		Topic: quiz.TopicRequest{DisplayLabel: "Genetics", StableID: "Genetics", CategoryID: "Science"},
		Answers: []quiz.Answer{
			{QuestionID: 1, Prompt: "q1", SelectedOption: "a", CorrectOption: "a", IsCorrect: true},
			{QuestionID: 2, Prompt: "q2", SelectedOption: "b", CorrectOption: "c", IsCorrect: false},
		},
	}
}

func TestEvaluateMergesAnswersWithAnalysis(t *testing.T) {
	content := `{"results": [{
		"title": "Genetics Report",
		"humanPercentile": 72,
		"demographicPercentile": 65,
		"demographicComment": "Above your bracket.",
		"aiComparison": "The machines are watching.",
		"details": [
			{"questionId": 1, "isCorrect": true, "aiComment": "Sharp.", "correctFact": "DNA is a double helix."}
		]
	}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	e := New(mock)

	results := e.Evaluate(context.Background(), []quiz.Batch{sampleBatch()}, Demographics{AgeGroup: "20s"}, quiz.LangEnglish)
	if len(results) != 1 {
		t.Fatalf("results len = %d, want 1", len(results))
	}
	r := results[0]

	// Score comes from the recorded answers, never the model.
	if r.TotalScore != 50 {
		t.Errorf("total score = %d, want 50", r.TotalScore)
	}
	if r.HumanPercentile != 72 {
		t.Errorf("human percentile = %d, want 72", r.HumanPercentile)
	}
	if len(r.PerQuestion) != 2 {
		t.Fatalf("per-question len = %d, want 2", len(r.PerQuestion))
	}
	if r.PerQuestion[0].Commentary != "Sharp." {
		t.Errorf("matched commentary = %q", r.PerQuestion[0].Commentary)
	}
	// Question 2 had no detail from the model.
	if r.PerQuestion[1].Commentary != "Analysis unavailable" {
		t.Errorf("placeholder commentary = %q", r.PerQuestion[1].Commentary)
	}
	if r.PerQuestion[1].IsCorrect {
		t.Error("correctness must come from the recorded answer")
	}
}

func TestEvaluateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := New(mock)

	results := e.Evaluate(context.Background(), []quiz.Batch{sampleBatch()}, Demographics{}, quiz.LangEnglish)
	if len(results) != 1 {
		t.Fatalf("results len = %d, want 1", len(results))
	}
	r := results[0]
	if r.TotalScore != 50 || r.HumanPercentile != 50 {
		t.Errorf("heuristic percentile = %d (score %d), want both 50", r.HumanPercentile, r.TotalScore)
	}
	if r.Title != "Genetics" {
		t.Errorf("fallback title = %q, want topic label", r.Title)
	}
	if len(r.PerQuestion) != 2 {
		t.Errorf("fallback per-question len = %d, want 2", len(r.PerQuestion))
	}
}

func TestEvaluateFallsBackOnReportCountMismatch(t *testing.T) {
	// Two batches in, one report out.
	content := `{"results": [{
		"title": "Only One", "humanPercentile": 50, "demographicPercentile": 50,
		"demographicComment": "", "aiComparison": "", "details": []
	}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	e := New(mock)

	second := sampleBatch()
	second.Topic.StableID = "Astronomy"
	results := e.Evaluate(context.Background(), []quiz.Batch{sampleBatch(), second}, Demographics{}, quiz.LangEnglish)

	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}
	if results[1].TopicID != "Astronomy" {
		t.Errorf("fallback order wrong: %q", results[1].TopicID)
	}
}

func TestEvaluateEmptyBatches(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock)
	if got := e.Evaluate(context.Background(), nil, Demographics{}, quiz.LangEnglish); got != nil {
		t.Errorf("want nil for no batches, got %v", got)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called with no batches")
	}
}

func TestEvalPromptIncludesAnswers(t *testing.T) {
	msg := buildEvalMessage([]quiz.Batch{sampleBatch()}, Demographics{AgeGroup: "30s", Nationality: "FR"}, quiz.LangFrench)

	for _, want := range []string{"Genetics", "Score: 50/100", "q2", "30s", "FR", "French"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestLocalReportsKoreanPlaceholder(t *testing.T) {
	results := LocalReports([]quiz.Batch{sampleBatch()}, quiz.LangKorean)
	if !strings.Contains(results[0].DemographicComment, "로컬 분석") {
		t.Errorf("korean placeholder missing: %q", results[0].DemographicComment)
	}
}
