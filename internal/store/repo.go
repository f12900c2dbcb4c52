package store

import (
	"context"
	"time"

	"github.com/abhisek/quizclash/internal/quiz"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Before  int64  // sequence < Before
	Purpose string // filter LLM events by purpose ("" = all)
}

// Profile is the single player profile: demographics, per-category
// ratings, the seen-question set, and per-topic high scores.
type Profile struct {
	Gender      string
	AgeGroup    string
	Nationality string

	// Ratings maps category id to rating. Categories never played are
	// absent; read through Rating for the default.
	Ratings map[string]int

	// SeenQuestionIDs holds every question id the player has answered,
	// across all sessions. Used to filter repeats out of cached and
	// static sets.
	SeenQuestionIDs map[int]bool

	// HighScores maps topic stable id to the best score achieved.
	HighScores map[string]int
}

// DefaultRating is the rating assumed for a category with no history.
const DefaultRating = 1000

// Rating returns the category's rating, or DefaultRating when unplayed.
func (p *Profile) Rating(categoryID string) int {
	if r, ok := p.Ratings[categoryID]; ok {
		return r
	}
	return DefaultRating
}

// ProfileRepo manages the single-row player profile.
type ProfileRepo interface {
	// Get loads the profile, returning an empty default when none has
	// been saved yet.
	Get(ctx context.Context) (*Profile, error)

	// Save persists the full profile state.
	Save(ctx context.Context, p *Profile) error
}

// CacheRepo persists resolved question sets between runs.
type CacheRepo interface {
	// Get returns the cached records for a key, or nil on a miss.
	Get(ctx context.Context, key string) ([]quiz.QuestionRecord, error)

	// Put stores records under a key. Storage failures never surface to
	// the caller: the cache is cleared and the write retried once, and
	// a second failure drops the entry.
	Put(ctx context.Context, key string, records []quiz.QuestionRecord) error

	// Clear removes every cached entry.
	Clear(ctx context.Context) error
}

// QuizResultData captures one completed topic round for the history log.
type QuizResultData struct {
	SessionID  string
	CategoryID string
	TopicID    string
	Score      int
	AIScore    int
	Difficulty string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event, including the captured
// request and response bodies.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizResult records a completed topic round.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// QuizHistory returns past rounds, newest first, capped at limit
	// (0 = unlimited).
	QuizHistory(ctx context.Context, limit int) ([]quiz.HistoryEntry, error)

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by row id, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates calls, tokens and latency per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
