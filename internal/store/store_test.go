package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizclash/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecords(ids ...int) []quiz.QuestionRecord {
	recs := make([]quiz.QuestionRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, quiz.QuestionRecord{
			ID:            id,
			Prompt:        "prompt",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: "a",
		})
	}
	return recs
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCachePutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CacheRepo()
	ctx := context.Background()

	key := quiz.CacheKey("Quantum Physics", quiz.DifficultyHard, quiz.LangEnglish)

	// Miss before any write.
	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil on cache miss")
	}

	if err := repo.Put(ctx, key, testRecords(1, 2, 3)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("first id = %d, want 1", got[0].ID)
	}
}

func TestCachePutOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.CacheRepo()
	ctx := context.Background()

	key := quiz.CacheKey("Genetics", quiz.DifficultyMedium, quiz.LangKorean)

	if err := repo.Put(ctx, key, testRecords(1)); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := repo.Put(ctx, key, testRecords(2, 3)); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("got %v, want records 2 and 3", got)
	}
}

func TestCacheClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.CacheRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "a_easy_en", testRecords(1)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Get(ctx, "a_easy_en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil after clear")
	}
}

func TestCacheCorruptEntryIsAMiss(t *testing.T) {
	s := openTestStore(t)
	repo := s.CacheRepo()
	ctx := context.Background()

	// Write a payload that does not decode as question records.
	err := s.Client().CacheEntry.Create().
		SetKey("bad_easy_en").
		SetPayload(`{"not":"records"}`).
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	got, err := repo.Get(ctx, "bad_easy_en")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("corrupt entry should read as a miss")
	}
}

// recoveryScript counts calls and serves scripted errors for the cache
// write-recovery sequence.
type recoveryScript struct {
	writeErrs []error
	clearErr  error
	writes    int
	clears    int
}

func (r *recoveryScript) write(context.Context) error {
	err := r.writeErrs[r.writes]
	r.writes++
	return err
}

func (r *recoveryScript) clear(context.Context) error {
	r.clears++
	return r.clearErr
}

func TestCachePutRecoversByClearing(t *testing.T) {
	full := errQuotaExceeded()
	sc := &recoveryScript{writeErrs: []error{full, nil}}

	putWithRecovery(context.Background(), "k_easy_en", sc.write, sc.clear)

	if sc.writes != 2 {
		t.Errorf("writes = %d, want 2 (original + retry)", sc.writes)
	}
	if sc.clears != 1 {
		t.Errorf("clears = %d, want 1", sc.clears)
	}
}

func TestCachePutDropsAfterSecondFailure(t *testing.T) {
	full := errQuotaExceeded()
	sc := &recoveryScript{writeErrs: []error{full, full}}

	// Must not panic or surface anything; the entry is simply dropped.
	putWithRecovery(context.Background(), "k_easy_en", sc.write, sc.clear)

	if sc.writes != 2 || sc.clears != 1 {
		t.Errorf("writes = %d, clears = %d; want 2 and 1", sc.writes, sc.clears)
	}
}

func TestCachePutStopsWhenClearFails(t *testing.T) {
	full := errQuotaExceeded()
	sc := &recoveryScript{writeErrs: []error{full, nil}, clearErr: full}

	putWithRecovery(context.Background(), "k_easy_en", sc.write, sc.clear)

	// No retry when even the clear cannot reclaim space.
	if sc.writes != 1 {
		t.Errorf("writes = %d, want 1", sc.writes)
	}
}

func TestCachePutNoRecoveryOnSuccess(t *testing.T) {
	sc := &recoveryScript{writeErrs: []error{nil}}

	putWithRecovery(context.Background(), "k_easy_en", sc.write, sc.clear)

	if sc.writes != 1 || sc.clears != 0 {
		t.Errorf("writes = %d, clears = %d; want 1 and 0", sc.writes, sc.clears)
	}
}

func errQuotaExceeded() error {
	return errors.New("database or disk is full")
}

func TestProfileDefaultWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil default profile")
	}
	if got := p.Rating("Science"); got != DefaultRating {
		t.Errorf("default rating = %d, want %d", got, DefaultRating)
	}
	if len(p.SeenQuestionIDs) != 0 {
		t.Errorf("default profile has %d seen ids", len(p.SeenQuestionIDs))
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := &Profile{
		Gender:          "female",
		AgeGroup:        "20s",
		Nationality:     "KR",
		Ratings:         map[string]int{"Science": 1030, "History": 980},
		SeenQuestionIDs: map[int]bool{101: true, 102: true},
		HighScores:      map[string]int{"Quantum Physics": 80},
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Nationality != "KR" {
		t.Errorf("nationality = %q, want KR", got.Nationality)
	}
	if got.Rating("Science") != 1030 {
		t.Errorf("Science rating = %d, want 1030", got.Rating("Science"))
	}
	if got.Rating("Movies") != DefaultRating {
		t.Errorf("unplayed rating = %d, want default", got.Rating("Movies"))
	}
	if !got.SeenQuestionIDs[101] || !got.SeenQuestionIDs[102] {
		t.Errorf("seen ids lost: %v", got.SeenQuestionIDs)
	}
	if got.HighScores["Quantum Physics"] != 80 {
		t.Errorf("high score = %d, want 80", got.HighScores["Quantum Physics"])
	}

	// Second save updates in place rather than adding a row.
	p.Ratings["Science"] = 1060
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}
	count, err := s.Client().Profile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}
}

func TestQuizHistoryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, score := range []int{40, 60, 80} {
		err := repo.AppendQuizResult(ctx, QuizResultData{
			SessionID:  "s1",
			CategoryID: "Science",
			TopicID:    "Genetics",
			Score:      score,
			AIScore:    95,
			Difficulty: string(quiz.DifficultyMedium),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.QuizHistory(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("history len = %d, want 3", len(entries))
	}
	if entries[0].Score != 80 || entries[2].Score != 40 {
		t.Errorf("history not newest-first: %+v", entries)
	}

	limited, err := repo.QuizHistory(ctx, 2)
	if err != nil {
		t.Fatalf("limited history: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:    "gemini",
		Model:       "gemini-2.5-flash",
		Purpose:     "quiz-gen",
		InputTokens: 120,
		Success:     true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("event rows = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"cache_entries", "profiles", "quiz_result_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
