package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/quizclash/internal/evaluate"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/store"
)

// scriptedResolver serves canned sets and can hold background calls
// open until released.
type scriptedResolver struct {
	block   chan struct{} // nil means never block
	calls   int
	perCall [][]quiz.TopicRequest
}

func (r *scriptedResolver) Resolve(_ context.Context, topics []quiz.TopicRequest, _ quiz.Difficulty, _ quiz.Language, _ *store.Profile) []quiz.Set {
	r.calls++
	r.perCall = append(r.perCall, topics)
	// The first call (foreground) is never blocked.
	if r.block != nil && r.calls > 1 {
		<-r.block
	}
	sets := make([]quiz.Set, 0, len(topics))
	for _, t := range topics {
		sets = append(sets, quiz.Set{Topic: t, Questions: setQuestions(t.StableID)})
	}
	return sets
}

func setQuestions(topic string) []quiz.QuestionRecord {
	qs := make([]quiz.QuestionRecord, 0, 2)
	for i := 1; i <= 2; i++ {
		qs = append(qs, quiz.QuestionRecord{
			ID:            hash(topic) + i,
			Prompt:        fmt.Sprintf("%s q%d", topic, i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: "a",
			Explanation:   "because",
		})
	}
	return qs
}

func hash(s string) int {
	h := 0
	for _, c := range s {
		h = h*31 + int(c)
	}
	if h < 0 {
		h = -h
	}
	return h % 100000 * 10
}

type localEvaluator struct {
	calls int
}

func (e *localEvaluator) Evaluate(_ context.Context, batches []quiz.Batch, _ evaluate.Demographics, lang quiz.Language) []quiz.EvaluationResult {
	e.calls++
	return evaluate.LocalReports(batches, lang)
}

func topicReq(name string) quiz.TopicRequest {
	return quiz.TopicRequest{DisplayLabel: name, StableID: name, CategoryID: "Science"}
}

func newTestSession(r Resolver, profiles store.ProfileRepo, events store.EventRepo) *Session {
	return New(r, &localEvaluator{}, profiles, events, quiz.DifficultyMedium, quiz.LangEnglish, Config{})
}

// playTopic answers every question of the current topic; correct picks
// "a", wrong picks "b".
func playTopic(t *testing.T, s *Session, correct int) *SubmitResult {
	t.Helper()
	var last *SubmitResult
	for i := 0; ; i++ {
		q := s.Current()
		if q == nil {
			break
		}
		pick := "b"
		if correct > 0 {
			pick = "a"
			correct--
		}
		res, err := s.SubmitAnswer(context.Background(), pick)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		last = res
		if res.TopicDone {
			break
		}
	}
	return last
}

func TestStartServesFirstTopicWithoutWaitingForRest(t *testing.T) {
	// The background call blocks until released; Start must return
	// anyway with the first topic playable.
	r := &scriptedResolver{block: make(chan struct{})}
	s := newTestSession(r, store.NewMemProfileRepo(), store.NewMemEventRepo())

	err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A"), topicReq("B"), topicReq("C")})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %s, want playing", s.State())
	}
	if s.CurrentTopic().StableID != "A" {
		t.Errorf("current topic = %s, want A", s.CurrentTopic().StableID)
	}
	if len(r.perCall[0]) != 1 {
		t.Errorf("foreground call resolved %d topics, want 1", len(r.perCall[0]))
	}
	close(r.block)
}

func TestNextTopicWaitsForBackground(t *testing.T) {
	r := &scriptedResolver{block: make(chan struct{})}
	s := newTestSession(r, store.NewMemProfileRepo(), store.NewMemEventRepo())

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A"), topicReq("B")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 2)

	// NextTopic must block until the prefetch settles, then activate B.
	advanced := make(chan error, 1)
	go func() { advanced <- s.NextTopic(context.Background()) }()

	select {
	case err := <-advanced:
		t.Fatalf("NextTopic returned before background finished: %v", err)
	case <-time.After(20 * time.Millisecond):
	}
	if got := s.State(); got != StateWaitingForBackground {
		t.Errorf("state while waiting = %s", got)
	}

	close(r.block)
	if err := <-advanced; err != nil {
		t.Fatalf("next topic: %v", err)
	}
	if s.CurrentTopic().StableID != "B" {
		t.Errorf("current topic = %s, want B", s.CurrentTopic().StableID)
	}
}

func TestNextTopicWaitCancellable(t *testing.T) {
	r := &scriptedResolver{block: make(chan struct{})}
	defer close(r.block)
	s := newTestSession(r, store.NewMemProfileRepo(), store.NewMemEventRepo())

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A"), topicReq("B")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.NextTopic(ctx); err == nil {
		t.Fatal("expected context error while background loading")
	}
}

func TestSubmitAnswerFlow(t *testing.T) {
	r := &scriptedResolver{}
	s := newTestSession(r, store.NewMemProfileRepo(), store.NewMemEventRepo())

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A")}); err != nil {
		t.Fatalf("start: %v", err)
	}

	res, err := s.SubmitAnswer(context.Background(), "a")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Correct || res.TopicDone {
		t.Errorf("first answer: %+v", res)
	}
	if res.Explanation != "because" {
		t.Errorf("explanation = %q", res.Explanation)
	}

	res, err = s.SubmitAnswer(context.Background(), "b")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct {
		t.Error("wrong answer marked correct")
	}
	if !res.TopicDone || !res.SessionDone {
		t.Errorf("final answer should close topic and session: %+v", res)
	}
}

func TestFinishUpdatesProfileAndHistory(t *testing.T) {
	r := &scriptedResolver{}
	profiles := store.NewMemProfileRepo()
	events := store.NewMemEventRepo()
	s := newTestSession(r, profiles, events)

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 2) // 2/2 -> score 100

	results, err := s.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].TotalScore != 100 {
		t.Errorf("score = %d, want 100", results[0].TotalScore)
	}
	if s.State() != StateDone {
		t.Errorf("state = %s, want done", s.State())
	}

	prof, _ := profiles.Get(context.Background())
	if got := prof.Rating("Science"); got != 1030 {
		t.Errorf("rating = %d, want 1030", got)
	}
	if len(prof.SeenQuestionIDs) != 2 {
		t.Errorf("seen ids = %d, want 2", len(prof.SeenQuestionIDs))
	}
	if prof.HighScores["A"] != 100 {
		t.Errorf("high score = %d, want 100", prof.HighScores["A"])
	}

	if len(events.Results) != 1 {
		t.Fatalf("history events = %d, want 1", len(events.Results))
	}
	ev := events.Results[0]
	if ev.SessionID != s.ID || ev.AIScore != 95 {
		t.Errorf("history event = %+v", ev)
	}
}

// failingProfileRepo breaks persistence after the session starts.
type failingProfileRepo struct {
	store.ProfileRepo
	failGet  bool
	failSave bool
}

func (f *failingProfileRepo) Get(ctx context.Context) (*store.Profile, error) {
	if f.failGet {
		return nil, fmt.Errorf("disk full")
	}
	return f.ProfileRepo.Get(ctx)
}

func (f *failingProfileRepo) Save(ctx context.Context, p *store.Profile) error {
	if f.failSave {
		return fmt.Errorf("disk full")
	}
	return f.ProfileRepo.Save(ctx, p)
}

func TestFinishSurvivesProfileSaveFailure(t *testing.T) {
	profiles := &failingProfileRepo{ProfileRepo: store.NewMemProfileRepo()}
	events := store.NewMemEventRepo()
	s := newTestSession(&scriptedResolver{}, profiles, events)

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 2)
	profiles.failSave = true

	results, err := s.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if s.State() != StateDone {
		t.Errorf("state = %s, want done", s.State())
	}
	// History is independent of the lost rating update.
	if len(events.Results) != 1 {
		t.Errorf("history events = %d, want 1", len(events.Results))
	}
}

func TestFinishSurvivesProfileLoadFailure(t *testing.T) {
	profiles := &failingProfileRepo{ProfileRepo: store.NewMemProfileRepo()}
	s := newTestSession(&scriptedResolver{}, profiles, store.NewMemEventRepo())

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 1)
	profiles.failGet = true

	results, err := s.Finish(context.Background())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if len(results) != 1 || results[0].TotalScore != 50 {
		t.Fatalf("results = %+v, want one 50-score report", results)
	}
	if s.State() != StateDone {
		t.Errorf("state = %s, want done", s.State())
	}
}

func TestFinishWithoutAnswersFails(t *testing.T) {
	s := newTestSession(&scriptedResolver{}, store.NewMemProfileRepo(), store.NewMemEventRepo())
	if _, err := s.Finish(context.Background()); err == nil {
		t.Fatal("expected error with nothing to evaluate")
	}
}

func TestStartRequiresTopics(t *testing.T) {
	s := newTestSession(&scriptedResolver{}, store.NewMemProfileRepo(), store.NewMemEventRepo())
	if err := s.Start(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty topic list")
	}
}

func TestBuildSummary(t *testing.T) {
	r := &scriptedResolver{}
	s := newTestSession(r, store.NewMemProfileRepo(), store.NewMemEventRepo())

	if err := s.Start(context.Background(), []quiz.TopicRequest{topicReq("A"), topicReq("B")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	playTopic(t, s, 2)
	if err := s.NextTopic(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	playTopic(t, s, 1)

	sum := s.BuildSummary()
	if sum.Topics != 2 {
		t.Errorf("topics = %d, want 2", sum.Topics)
	}
	if sum.TotalQuestions != 4 || sum.TotalCorrect != 3 {
		t.Errorf("questions %d/%d, want 3/4 correct", sum.TotalCorrect, sum.TotalQuestions)
	}
	if sum.AIBenchmark != 95 {
		t.Errorf("benchmark = %d, want 95", sum.AIBenchmark)
	}
	if sum.TopicScores[1].Score != 50 {
		t.Errorf("topic B score = %d, want 50", sum.TopicScores[1].Score)
	}
}
