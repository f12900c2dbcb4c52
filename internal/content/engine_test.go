package content

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/quizclash/internal/dataset"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/quizgen"
	"github.com/abhisek/quizclash/internal/store"
	"github.com/abhisek/quizclash/internal/topics"
)

// fakeGenerator is a scripted BatchGenerator.
type fakeGenerator struct {
	batchOut     map[string][]quiz.QuestionRecord
	batchErr     error
	batchCalls   int
	batchInputs  []quizgen.BatchInput
	translateErr error
	translated   int
}

func (f *fakeGenerator) GenerateBatch(_ context.Context, in quizgen.BatchInput) (map[string][]quiz.QuestionRecord, error) {
	f.batchCalls++
	f.batchInputs = append(f.batchInputs, in)
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batchOut, nil
}

func (f *fakeGenerator) Translate(_ context.Context, records []quiz.QuestionRecord, lang quiz.Language) ([]quiz.QuestionRecord, error) {
	if f.translateErr != nil {
		return nil, f.translateErr
	}
	f.translated++
	out := make([]quiz.QuestionRecord, len(records))
	copy(out, records)
	for i := range out {
		out[i].Prompt = fmt.Sprintf("%s (%s)", out[i].Prompt, lang)
	}
	return out, nil
}

func records(ids ...int) []quiz.QuestionRecord {
	out := make([]quiz.QuestionRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, quiz.QuestionRecord{
			ID:            id,
			Prompt:        fmt.Sprintf("q%d", id),
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: "a",
		})
	}
	return out
}

func emptyProfile() *store.Profile {
	return &store.Profile{
		Ratings:         map[string]int{},
		SeenQuestionIDs: map[int]bool{},
		HighScores:      map[string]int{},
	}
}

func newTestEngine(gen BatchGenerator, cache store.CacheRepo) *Engine {
	return NewEngine(dataset.NewIndex(), cache, gen)
}

func quantumPhysics() quiz.TopicRequest {
	return quiz.TopicRequest{DisplayLabel: "Quantum Physics", StableID: "Quantum Physics", CategoryID: topics.CategoryScience}
}

func obscureTopic() quiz.TopicRequest {
	return quiz.TopicRequest{DisplayLabel: "Obscure Trivia", StableID: "Obscure Trivia", CategoryID: topics.CategoryGeneral}
}

func TestResolveStaticBankHit(t *testing.T) {
	gen := &fakeGenerator{}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	sets := e.Resolve(context.Background(), []quiz.TopicRequest{quantumPhysics()},
		quiz.DifficultyHard, quiz.LangEnglish, emptyProfile())

	if len(sets) != 1 {
		t.Fatalf("sets len = %d", len(sets))
	}
	if len(sets[0].Questions) != quiz.QuestionsPerSet {
		t.Errorf("questions = %d, want %d", len(sets[0].Questions), quiz.QuestionsPerSet)
	}
	if gen.batchCalls != 0 {
		t.Error("generator called despite bank hit")
	}
}

func TestResolveCacheHit(t *testing.T) {
	gen := &fakeGenerator{}
	cache := store.NewMemCacheRepo()
	ctx := context.Background()

	topic := obscureTopic()
	key := quiz.CacheKey(topic.StableID, quiz.DifficultyEasy, quiz.LangEnglish)
	if err := cache.Put(ctx, key, records(1, 2, 3, 4, 5)); err != nil {
		t.Fatal(err)
	}

	e := newTestEngine(gen, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyEasy, quiz.LangEnglish, emptyProfile())

	if len(sets[0].Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(sets[0].Questions))
	}
	if gen.batchCalls != 0 {
		t.Error("generator called despite cache hit")
	}
}

// A topic with three unseen bank questions and two unseen cached
// questions still makes a full round from the union of both tiers.
func TestResolveMergesBankAndCache(t *testing.T) {
	gen := &fakeGenerator{}
	cache := store.NewMemCacheRepo()
	ctx := context.Background()

	topic := quantumPhysics()
	prof := emptyProfile()
	// Bank ids for Quantum Physics HARD en are 101-105; mark two seen.
	prof.SeenQuestionIDs[101] = true
	prof.SeenQuestionIDs[102] = true

	key := quiz.CacheKey(topic.StableID, quiz.DifficultyHard, quiz.LangEnglish)
	if err := cache.Put(ctx, key, records(901, 902)); err != nil {
		t.Fatal(err)
	}

	e := newTestEngine(gen, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyHard, quiz.LangEnglish, prof)

	if len(sets[0].Questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(sets[0].Questions))
	}
	if gen.batchCalls != 0 {
		t.Error("generator called despite merged tiers sufficing")
	}
	for _, q := range sets[0].Questions {
		if q.ID == 101 || q.ID == 102 {
			t.Errorf("seen question %d served", q.ID)
		}
	}
}

func TestResolveTranslatesMasterData(t *testing.T) {
	gen := &fakeGenerator{}
	cache := store.NewMemCacheRepo()
	ctx := context.Background()

	// World War II has an en master bank but no ja bank, so a Japanese
	// request takes the translation path.
	topic := quiz.TopicRequest{DisplayLabel: "World War II", StableID: "World War II", CategoryID: topics.CategoryHistory}

	e := newTestEngine(gen, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyHard, quiz.LangJapanese, emptyProfile())

	if gen.translated != 1 {
		t.Fatalf("translate calls = %d, want 1", gen.translated)
	}
	if gen.batchCalls != 0 {
		t.Error("generator called despite master data existing")
	}
	if len(sets[0].Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(sets[0].Questions))
	}

	// Translation results are cached for the next session.
	key := quiz.CacheKey(topic.StableID, quiz.DifficultyHard, quiz.LangJapanese)
	cached, _ := cache.Get(ctx, key)
	if len(cached) != 5 {
		t.Errorf("translated set not cached: %d records", len(cached))
	}
}

func TestResolveGeneratesMissingTopics(t *testing.T) {
	topic := obscureTopic()
	gen := &fakeGenerator{
		batchOut: map[string][]quiz.QuestionRecord{
			topic.StableID: records(11, 12, 13, 14, 15),
		},
	}
	cache := store.NewMemCacheRepo()
	ctx := context.Background()

	e := newTestEngine(gen, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyMedium, quiz.LangEnglish, emptyProfile())

	if gen.batchCalls != 1 {
		t.Fatalf("batch calls = %d, want 1", gen.batchCalls)
	}
	if len(sets[0].Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(sets[0].Questions))
	}

	key := quiz.CacheKey(topic.StableID, quiz.DifficultyMedium, quiz.LangEnglish)
	cached, _ := cache.Get(ctx, key)
	if len(cached) != 5 {
		t.Errorf("generated set not cached: %d records", len(cached))
	}
}

func TestResolveSurvivesCacheWriteFailure(t *testing.T) {
	topic := obscureTopic()
	gen := &fakeGenerator{
		batchOut: map[string][]quiz.QuestionRecord{
			topic.StableID: records(11, 12, 13, 14, 15),
		},
	}
	cache := store.NewMemCacheRepo()
	cache.FailPuts = true
	ctx := context.Background()

	e := newTestEngine(gen, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyMedium, quiz.LangEnglish, emptyProfile())

	if len(sets[0].Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(sets[0].Questions))
	}
	if cache.Len() != 0 {
		t.Errorf("cache entries = %d, want 0 after dropped writes", cache.Len())
	}
	if cache.Cleared == 0 {
		t.Error("cache was never cleared on write failure")
	}
}

func TestResolveSharesOneGenerationCall(t *testing.T) {
	a := obscureTopic()
	b := quiz.TopicRequest{DisplayLabel: "Another", StableID: "Another", CategoryID: topics.CategoryGeneral}
	gen := &fakeGenerator{
		batchOut: map[string][]quiz.QuestionRecord{
			a.StableID: records(1, 2, 3, 4, 5),
			b.StableID: records(6, 7, 8, 9, 10),
		},
	}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	prof := emptyProfile()
	prof.Ratings[topics.CategoryGeneral] = 1300
	sets := e.Resolve(context.Background(), []quiz.TopicRequest{a, b}, quiz.DifficultyMedium, quiz.LangEnglish, prof)

	if gen.batchCalls != 1 {
		t.Fatalf("batch calls = %d, want 1", gen.batchCalls)
	}
	if len(gen.batchInputs[0].Topics) != 2 {
		t.Errorf("batch input topics = %d, want 2", len(gen.batchInputs[0].Topics))
	}
	if gen.batchInputs[0].Topics[0].Rating != 1300 {
		t.Errorf("rating not threaded: %d", gen.batchInputs[0].Topics[0].Rating)
	}
	if len(sets[0].Questions) != 5 || len(sets[1].Questions) != 5 {
		t.Error("not all topics resolved")
	}
}

func TestResolveFallbackOnGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{batchErr: errors.New("rate limited")}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	sets := e.Resolve(context.Background(), []quiz.TopicRequest{obscureTopic()},
		quiz.DifficultyMedium, quiz.LangEnglish, emptyProfile())

	if len(sets[0].Questions) != quiz.QuestionsPerSet {
		t.Fatalf("fallback set size = %d", len(sets[0].Questions))
	}
	// Fallback ids start at 1.
	if sets[0].Questions[0].ID != 1 {
		t.Errorf("expected emergency fallback set, got first id %d", sets[0].Questions[0].ID)
	}
}

func TestResolveFallbackOnSkippedTopic(t *testing.T) {
	served := obscureTopic()
	skipped := quiz.TopicRequest{DisplayLabel: "Skipped", StableID: "Skipped", CategoryID: topics.CategoryGeneral}
	gen := &fakeGenerator{
		batchOut: map[string][]quiz.QuestionRecord{
			served.StableID: records(21, 22, 23, 24, 25),
		},
	}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	sets := e.Resolve(context.Background(), []quiz.TopicRequest{served, skipped},
		quiz.DifficultyMedium, quiz.LangEnglish, emptyProfile())

	if sets[0].Questions[0].ID < 21 {
		t.Error("served topic got fallback set")
	}
	if len(sets[1].Questions) != 5 || sets[1].Questions[0].ID != 1 {
		t.Error("skipped topic did not get fallback set")
	}
}

func TestResolveTranslateFailureFallsThroughToGeneration(t *testing.T) {
	topic := quiz.TopicRequest{DisplayLabel: "World War II", StableID: "World War II", CategoryID: topics.CategoryHistory}
	gen := &fakeGenerator{
		translateErr: errors.New("quota"),
		batchOut: map[string][]quiz.QuestionRecord{
			topic.StableID: records(31, 32, 33, 34, 35),
		},
	}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	sets := e.Resolve(context.Background(), []quiz.TopicRequest{topic},
		quiz.DifficultyHard, quiz.LangJapanese, emptyProfile())

	if gen.batchCalls != 1 {
		t.Fatalf("batch calls = %d, want 1", gen.batchCalls)
	}
	if sets[0].Questions[0].ID != 31 {
		t.Error("generation result not used after translation failure")
	}
}

func TestResolveKeepsInputOrder(t *testing.T) {
	banked := quantumPhysics()
	generated := obscureTopic()
	gen := &fakeGenerator{
		batchOut: map[string][]quiz.QuestionRecord{
			generated.StableID: records(41, 42, 43, 44, 45),
		},
	}
	e := newTestEngine(gen, store.NewMemCacheRepo())

	sets := e.Resolve(context.Background(), []quiz.TopicRequest{generated, banked},
		quiz.DifficultyHard, quiz.LangEnglish, emptyProfile())

	if sets[0].Topic.StableID != generated.StableID {
		t.Errorf("slot 0 = %s, want %s", sets[0].Topic.StableID, generated.StableID)
	}
	if sets[1].Topic.StableID != banked.StableID {
		t.Errorf("slot 1 = %s, want %s", sets[1].Topic.StableID, banked.StableID)
	}
}

func TestResolveNeverServesSeenQuestions(t *testing.T) {
	topic := obscureTopic()
	cache := store.NewMemCacheRepo()
	ctx := context.Background()

	key := quiz.CacheKey(topic.StableID, quiz.DifficultyEasy, quiz.LangEnglish)
	if err := cache.Put(ctx, key, records(1, 2, 3, 4, 5, 6, 7)); err != nil {
		t.Fatal(err)
	}

	prof := emptyProfile()
	prof.SeenQuestionIDs[1] = true
	prof.SeenQuestionIDs[2] = true

	e := newTestEngine(&fakeGenerator{}, cache)
	sets := e.Resolve(ctx, []quiz.TopicRequest{topic}, quiz.DifficultyEasy, quiz.LangEnglish, prof)

	for _, q := range sets[0].Questions {
		if prof.SeenQuestionIDs[q.ID] {
			t.Errorf("seen question %d served", q.ID)
		}
	}
}
