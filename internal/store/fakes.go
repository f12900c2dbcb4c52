package store

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/quizclash/internal/quiz"
)

// MemCacheRepo is an in-memory CacheRepo for tests and ephemeral runs.
// FailPuts, when set, makes every write fail so quota-recovery paths can
// be exercised.
type MemCacheRepo struct {
	mu       sync.Mutex
	entries  map[string][]quiz.QuestionRecord
	FailPuts bool
	Cleared  int
}

// NewMemCacheRepo creates an empty in-memory cache.
func NewMemCacheRepo() *MemCacheRepo {
	return &MemCacheRepo{entries: make(map[string][]quiz.QuestionRecord)}
}

func (m *MemCacheRepo) Get(_ context.Context, key string) ([]quiz.QuestionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *MemCacheRepo) Put(_ context.Context, key string, records []quiz.QuestionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts {
		// Mirror the durable repo: clear, then drop silently.
		m.entries = make(map[string][]quiz.QuestionRecord)
		m.Cleared++
		return nil
	}
	m.entries[key] = records
	return nil
}

func (m *MemCacheRepo) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]quiz.QuestionRecord)
	m.Cleared++
	return nil
}

// Len reports the number of cached entries.
func (m *MemCacheRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// MemProfileRepo is an in-memory ProfileRepo for tests.
type MemProfileRepo struct {
	mu      sync.Mutex
	profile *Profile
}

// NewMemProfileRepo creates a repo with an empty default profile.
func NewMemProfileRepo() *MemProfileRepo {
	return &MemProfileRepo{}
}

func (m *MemProfileRepo) Get(_ context.Context) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return newEmptyProfile(), nil
	}
	return cloneProfile(m.profile), nil
}

func (m *MemProfileRepo) Save(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = cloneProfile(p)
	return nil
}

func cloneProfile(p *Profile) *Profile {
	out := newEmptyProfile()
	out.Gender = p.Gender
	out.AgeGroup = p.AgeGroup
	out.Nationality = p.Nationality
	for k, v := range p.Ratings {
		out.Ratings[k] = v
	}
	for k := range p.SeenQuestionIDs {
		out.SeenQuestionIDs[k] = true
	}
	for k, v := range p.HighScores {
		out.HighScores[k] = v
	}
	return out
}

// MemEventRepo is an in-memory EventRepo for tests.
type MemEventRepo struct {
	mu          sync.Mutex
	LLMRequests []LLMRequestEventData
	Results     []QuizResultData
	resultTimes []time.Time
}

// NewMemEventRepo creates an empty in-memory event log.
func NewMemEventRepo() *MemEventRepo {
	return &MemEventRepo{}
}

func (m *MemEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LLMRequests = append(m.LLMRequests, data)
	return nil
}

func (m *MemEventRepo) AppendQuizResult(_ context.Context, data QuizResultData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = append(m.Results, data)
	m.resultTimes = append(m.resultTimes, time.Now())
	return nil
}

func (m *MemEventRepo) QuizHistory(_ context.Context, limit int) ([]quiz.HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]quiz.HistoryEntry, 0, len(m.Results))
	for i := len(m.Results) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) == limit {
			break
		}
		r := m.Results[i]
		entries = append(entries, quiz.HistoryEntry{
			Timestamp:  m.resultTimes[i],
			CategoryID: r.CategoryID,
			Score:      r.Score,
			AIScore:    r.AIScore,
			Difficulty: quiz.Difficulty(r.Difficulty),
		})
	}
	return entries, nil
}

func (m *MemEventRepo) QueryLLMEvents(_ context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]LLMEventRecord, 0, len(m.LLMRequests))
	for i := len(m.LLMRequests) - 1; i >= 0; i-- {
		if opts.Limit > 0 && len(records) == opts.Limit {
			break
		}
		data := m.LLMRequests[i]
		if opts.Purpose != "" && data.Purpose != opts.Purpose {
			continue
		}
		records = append(records, LLMEventRecord{
			ID:                  i + 1,
			Sequence:            int64(i + 1),
			LLMRequestEventData: data,
		})
	}
	return records, nil
}

func (m *MemEventRepo) GetLLMEvent(_ context.Context, id int) (*LLMEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || id > len(m.LLMRequests) {
		return nil, nil
	}
	return &LLMEventRecord{
		ID:                  id,
		Sequence:            int64(id),
		LLMRequestEventData: m.LLMRequests[id-1],
	}, nil
}

func (m *MemEventRepo) LLMUsageByPurpose(_ context.Context) ([]LLMUsageStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byPurpose := make(map[string]*LLMUsageStat)
	order := make([]string, 0)
	totalLatency := make(map[string]int64)
	for _, data := range m.LLMRequests {
		st, ok := byPurpose[data.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: data.Purpose}
			byPurpose[data.Purpose] = st
			order = append(order, data.Purpose)
		}
		st.Calls++
		st.InputTokens += data.InputTokens
		st.OutputTokens += data.OutputTokens
		totalLatency[data.Purpose] += data.LatencyMs
	}

	stats := make([]LLMUsageStat, 0, len(order))
	for _, p := range order {
		st := byPurpose[p]
		st.AvgLatencyMs = totalLatency[p] / int64(st.Calls)
		stats = append(stats, *st)
	}
	return stats, nil
}

func (m *MemEventRepo) LLMUsageByModel(_ context.Context) ([]LLMModelUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byModel := make(map[string]*LLMModelUsage)
	order := make([]string, 0)
	for _, data := range m.LLMRequests {
		u, ok := byModel[data.Model]
		if !ok {
			u = &LLMModelUsage{Model: data.Model}
			byModel[data.Model] = u
			order = append(order, data.Model)
		}
		u.Calls++
		u.InputTokens += data.InputTokens
		u.OutputTokens += data.OutputTokens
	}

	usage := make([]LLMModelUsage, 0, len(order))
	for _, mdl := range order {
		usage = append(usage, *byModel[mdl])
	}
	return usage, nil
}
