package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/quizclash/internal/llm"
	"github.com/abhisek/quizclash/internal/quiz"
)

func topicPrompt(stableID, catID string, r int) TopicPrompt {
	return TopicPrompt{
		Topic:  quiz.TopicRequest{DisplayLabel: stableID, StableID: stableID, CategoryID: catID},
		Rating: r,
	}
}

func recordJSON(id int) string {
	rec := quiz.QuestionRecord{
		ID:            id,
		Prompt:        "prompt",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: "a",
		Explanation:   "fact",
	}
	b, _ := json.Marshal(rec)
	return string(b)
}

func TestGenerateBatchKeyedByStableID(t *testing.T) {
	content := `{
		"Blockchain": [` + recordJSON(1) + `,` + recordJSON(2) + `],
		"Stoicism": [` + recordJSON(3) + `]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	out, err := g.GenerateBatch(context.Background(), BatchInput{
		Topics: []TopicPrompt{
			topicPrompt("Blockchain", "Tech", 1000),
			topicPrompt("Stoicism", "Philosophy", 1250),
		},
		Difficulty: quiz.DifficultyMedium,
		Language:   quiz.LangEnglish,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(out["Blockchain"]) != 2 || len(out["Stoicism"]) != 1 {
		t.Errorf("unexpected batch shape: %v", out)
	}

	// One call served both topics.
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-batch" {
		t.Fatal("batch schema not attached to request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Blockchain") || !strings.Contains(msg, "Stoicism") {
		t.Errorf("prompt missing topics: %s", msg)
	}
	if !strings.Contains(msg, "Advanced") {
		t.Errorf("prompt missing adaptive level for rating 1250: %s", msg)
	}
}

func TestGenerateBatchSkipsMissingAndInvalidTopics(t *testing.T) {
	// "Gone" is absent and "Broken" has a malformed record; "Fine" must
	// still come through.
	content := `{
		"Fine": [` + recordJSON(1) + `],
		"Broken": [{"id": 2, "question": "", "options": ["a","b","c","d"], "correctAnswer": "a"}]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	out, err := g.GenerateBatch(context.Background(), BatchInput{
		Topics: []TopicPrompt{
			topicPrompt("Fine", "Tech", 1000),
			topicPrompt("Broken", "Tech", 1000),
			topicPrompt("Gone", "Tech", 1000),
		},
		Difficulty: quiz.DifficultyEasy,
		Language:   quiz.LangEnglish,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(out) != 1 || len(out["Fine"]) != 1 {
		t.Errorf("want only Fine in result, got %v", out)
	}
}

func TestGenerateBatchAssignsMissingIDs(t *testing.T) {
	content := `{"T": [{"question": "q", "options": ["a","b","c","d"], "correctAnswer": "b", "context": "f"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	out, err := g.GenerateBatch(context.Background(), BatchInput{
		Topics:     []TopicPrompt{topicPrompt("T", "General", 1000)},
		Difficulty: quiz.DifficultyEasy,
		Language:   quiz.LangEnglish,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out["T"][0].ID == 0 {
		t.Error("missing id was not assigned")
	}
}

func TestGenerateBatchEmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	out, err := g.GenerateBatch(context.Background(), BatchInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("want empty map, got %v", out)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for empty input")
	}
}

func TestTranslatePreservesIDs(t *testing.T) {
	source := []quiz.QuestionRecord{
		{ID: 101, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: "a"},
		{ID: 102, Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: "b"},
	}

	// Model drifts the ids; Translate must restore them.
	content := `{"questions": [
		{"id": 1, "question": "q1-ko", "options": ["가","나","다","라"], "correctAnswer": "가"},
		{"id": 2, "question": "q2-ko", "options": ["가","나","다","라"], "correctAnswer": "나"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	got, err := g.Translate(context.Background(), source, quiz.LangKorean)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got[0].ID != 101 || got[1].ID != 102 {
		t.Errorf("ids not preserved: %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Prompt != "q1-ko" {
		t.Errorf("prompt not translated: %q", got[0].Prompt)
	}
}

func TestTranslateLengthMismatchFails(t *testing.T) {
	source := []quiz.QuestionRecord{
		{ID: 101, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: "a"},
		{ID: 102, Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: "b"},
	}
	content := `{"questions": [{"id": 101, "question": "q1-ko", "options": ["가","나","다","라"], "correctAnswer": "가"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	if _, err := g.Translate(context.Background(), source, quiz.LangKorean); err == nil {
		t.Fatal("expected error on dropped record")
	}
}

func TestFallbackSetIsValid(t *testing.T) {
	set := FallbackSet()
	if len(set) != quiz.QuestionsPerSet {
		t.Fatalf("fallback set has %d questions, want %d", len(set), quiz.QuestionsPerSet)
	}
	for _, q := range set {
		if err := q.Validate(); err != nil {
			t.Errorf("fallback question %d invalid: %v", q.ID, err)
		}
	}
}

func TestBatchSchemaRequiresEveryTopic(t *testing.T) {
	s := BatchSchema([]string{"A", "B"})
	req, ok := s.Definition["required"].([]any)
	if !ok || len(req) != 2 {
		t.Fatalf("required = %v", s.Definition["required"])
	}
	props := s.Definition["properties"].(map[string]any)
	if _, ok := props["A"]; !ok {
		t.Error("schema missing topic property A")
	}
}
