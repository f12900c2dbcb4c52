package quiz

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Language is a supported display language code.
type Language string

const (
	LangEnglish  Language = "en"
	LangKorean   Language = "ko"
	LangJapanese Language = "ja"
	LangSpanish  Language = "es"
	LangFrench   Language = "fr"
	LangChinese  Language = "zh"
)

// MasterLanguage is the canonical language for stable topic ids and
// master question data. Tier-3 translation sources from here.
const MasterLanguage = LangEnglish

// SupportedLanguages lists every language the client can serve.
var SupportedLanguages = []Language{
	LangEnglish, LangKorean, LangJapanese, LangSpanish, LangFrench, LangChinese,
}

// ParseLanguage normalizes a language code, falling back to English for
// anything unsupported.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.SplitN(code, "-", 2)[0])
	for _, l := range SupportedLanguages {
		if Language(code) == l {
			return l
		}
	}
	return LangEnglish
}

// Difficulty is the base difficulty requested for a session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// AIBenchmark returns the simulated AI score for the given base
// difficulty, used as the comparator in history entries.
func (d Difficulty) AIBenchmark() int {
	switch d {
	case DifficultyHard:
		return 98
	case DifficultyMedium:
		return 95
	default:
		return 92
	}
}

// QuestionsPerSet is the number of questions in one topic's round.
const QuestionsPerSet = 5

// TopicRequest identifies one requested topic for a session.
// DisplayLabel is what the player selected (possibly localized);
// StableID is the language-invariant form used for all storage keys.
type TopicRequest struct {
	DisplayLabel string
	StableID     string
	CategoryID   string
}

// CacheKey derives the deterministic storage key for a topic's question
// set. Used for the persistent cache and for in-flight coalescing.
func CacheKey(stableID string, difficulty Difficulty, lang Language) string {
	return strings.ToLower(fmt.Sprintf("%s_%s_%s", stableID, difficulty, lang))
}

// QuestionRecord is a single multiple-choice question. The JSON field
// names are the wire format shared by the cache, the bundled dataset,
// and the generation service.
type QuestionRecord struct {
	// ID is stable across languages for the same fact, so seen-question
	// tracking survives translation.
	ID int `json:"id"`

	Prompt string `json:"question"`

	// Options holds exactly four unique choices.
	Options []string `json:"options"`

	// CorrectOption is textually equal to exactly one entry of Options.
	CorrectOption string `json:"correctAnswer"`

	// Explanation is an optional short fact shown after answering.
	Explanation string `json:"context,omitempty"`
}

// Validate checks the structural invariants of a record.
func (q *QuestionRecord) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question %d: empty prompt", q.ID)
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
	}
	seen := make(map[string]bool, 4)
	matched := false
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("question %d: duplicate option %q", q.ID, opt)
		}
		seen[opt] = true
		if opt == q.CorrectOption {
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("question %d: correct answer %q not among options", q.ID, q.CorrectOption)
	}
	return nil
}

// Set is one topic's resolved question list, ready to play.
type Set struct {
	Topic     TopicRequest
	Questions []QuestionRecord
}

// Answer records the player's response to one question.
type Answer struct {
	QuestionID     int
	Prompt         string
	SelectedOption string
	CorrectOption  string
	IsCorrect      bool
	Explanation    string
}

// Batch is the full set of answers for one topic within a session.
// Consumed exactly once by the evaluator, then discarded.
type Batch struct {
	Topic   TopicRequest
	Answers []Answer
}

// Score computes the 0-100 score for the batch.
func (b *Batch) Score() int {
	if len(b.Answers) == 0 {
		return 0
	}
	correct := 0
	for _, a := range b.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(b.Answers)) * 100))
}

// QuestionEval is the per-question portion of an evaluation report.
type QuestionEval struct {
	QuestionID     int
	IsCorrect      bool
	Commentary     string
	FactCheck      string
	Prompt         string
	SelectedOption string
	CorrectOption  string
}

// EvaluationResult is the end-of-session report for one topic.
type EvaluationResult struct {
	TopicID               string
	Title                 string
	TotalScore            int
	HumanPercentile       int
	DemographicPercentile int
	NarrativeComparison   string
	DemographicComment    string
	PerQuestion           []QuestionEval
}

// HistoryEntry is one append-only performance record on the profile.
type HistoryEntry struct {
	Timestamp  time.Time
	CategoryID string
	Score      int
	AIScore    int
	Difficulty Difficulty
}
