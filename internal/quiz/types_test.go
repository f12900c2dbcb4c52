package quiz

import (
	"encoding/json"
	"testing"
)

func validRecord() QuestionRecord {
	return QuestionRecord{
		ID:            1,
		Prompt:        "Which planet is known as the Red Planet?",
		Options:       []string{"Venus", "Mars", "Jupiter", "Mercury"},
		CorrectOption: "Mars",
		Explanation:   "Iron oxide on its surface gives Mars its reddish color.",
	}
}

func TestQuestionRecordValidate(t *testing.T) {
	q := validRecord()
	if err := q.Validate(); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestQuestionRecordValidate_AnswerNotAnOption(t *testing.T) {
	q := validRecord()
	q.CorrectOption = "Saturn"
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for answer not among options")
	}
}

func TestQuestionRecordValidate_DuplicateOptions(t *testing.T) {
	q := validRecord()
	q.Options = []string{"Mars", "Mars", "Jupiter", "Mercury"}
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for duplicate options")
	}
}

func TestQuestionRecordValidate_WrongOptionCount(t *testing.T) {
	q := validRecord()
	q.Options = q.Options[:3]
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for 3 options")
	}
}

func TestDecodeRecords_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"not an array":   `{"id":1}`,
		"empty array":    `[]`,
		"invalid record": `[{"id":1,"question":"q","options":["a","b","c","d"],"correctAnswer":"e"}]`,
	}
	for name, raw := range cases {
		if _, err := DecodeRecords(json.RawMessage(raw)); err == nil {
			t.Errorf("%s: expected decode error", name)
		}
	}
}

func TestDecodeRecords_RoundTrip(t *testing.T) {
	in := []QuestionRecord{validRecord()}
	raw, err := EncodeRecords(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeRecords(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	want := in[0]
	got := out[0]
	if got.ID != want.ID || got.Prompt != want.Prompt ||
		got.CorrectOption != want.CorrectOption || got.Explanation != want.Explanation {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	for i, opt := range want.Options {
		if got.Options[i] != opt {
			t.Fatalf("option %d mismatch: %q != %q", i, got.Options[i], opt)
		}
	}
}

func TestBatchScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{5, 5, 100},
		{4, 5, 80},
		{3, 5, 60},
		{1, 3, 33},
		{2, 3, 67},
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		b := Batch{}
		for i := 0; i < tt.total; i++ {
			b.Answers = append(b.Answers, Answer{IsCorrect: i < tt.correct})
		}
		if got := b.Score(); got != tt.want {
			t.Errorf("score(%d/%d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	got := CacheKey("Quantum Physics", DifficultyMedium, LangEnglish)
	want := "quantum physics_medium_en"
	if got != want {
		t.Fatalf("CacheKey = %q, want %q", got, want)
	}
}

func TestAIBenchmark(t *testing.T) {
	if got := DifficultyEasy.AIBenchmark(); got != 92 {
		t.Errorf("EASY benchmark = %d, want 92", got)
	}
	if got := DifficultyMedium.AIBenchmark(); got != 95 {
		t.Errorf("MEDIUM benchmark = %d, want 95", got)
	}
	if got := DifficultyHard.AIBenchmark(); got != 98 {
		t.Errorf("HARD benchmark = %d, want 98", got)
	}
}

func TestParseLanguage(t *testing.T) {
	if got := ParseLanguage("ko-KR"); got != LangKorean {
		t.Errorf("ParseLanguage(ko-KR) = %q", got)
	}
	if got := ParseLanguage("de"); got != LangEnglish {
		t.Errorf("ParseLanguage(de) = %q, want fallback en", got)
	}
}
