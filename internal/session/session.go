// Package session orchestrates a full sitting: the first topic resolves
// in the foreground while the rest prefetch behind a single background
// goroutine, answers accumulate into per-topic batches, and close-out
// evaluates everything in one call and folds the outcomes into the
// profile.
package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizclash/internal/evaluate"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/rating"
	"github.com/abhisek/quizclash/internal/store"
)

// Resolver turns topic requests into playable sets.
type Resolver interface {
	Resolve(ctx context.Context, topics []quiz.TopicRequest, difficulty quiz.Difficulty, lang quiz.Language, prof *store.Profile) []quiz.Set
}

// Evaluator turns answer batches into end-of-session reports.
type Evaluator interface {
	Evaluate(ctx context.Context, batches []quiz.Batch, demo evaluate.Demographics, lang quiz.Language) []quiz.EvaluationResult
}

// Config tunes session behavior.
type Config struct {
	// AdvanceDelay is the pause between confirming an answer and
	// showing the next question. Zero in tests.
	AdvanceDelay time.Duration
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{AdvanceDelay: 800 * time.Millisecond}
}

// prefetch is the handle for the single background resolution. The
// channel closes when sets is populated, so a drained queue waits on
// it explicitly instead of polling a flag.
type prefetch struct {
	done chan struct{}
	sets []quiz.Set
}

// Session runs one sitting across a list of topics.
type Session struct {
	ID string

	resolver  Resolver
	evaluator Evaluator
	profiles  store.ProfileRepo
	events    store.EventRepo
	config    Config

	difficulty quiz.Difficulty
	lang       quiz.Language

	mu         sync.Mutex
	state      State
	totalSets  int
	queue      []quiz.Set
	current    *quiz.Set
	questionAt int
	answers    []quiz.Answer
	completed  []quiz.Batch
	submitting bool
	background *prefetch
}

// New creates a Session with a fresh id.
func New(resolver Resolver, evaluator Evaluator, profiles store.ProfileRepo, events store.EventRepo, difficulty quiz.Difficulty, lang quiz.Language, cfg Config) *Session {
	return &Session{
		ID:         uuid.NewString(),
		resolver:   resolver,
		evaluator:  evaluator,
		profiles:   profiles,
		events:     events,
		config:     cfg,
		difficulty: difficulty,
		lang:       lang,
		state:      StateIdle,
	}
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start resolves the first topic in the foreground and kicks off one
// background resolution for the rest. It returns once the first set is
// playable.
func (s *Session) Start(ctx context.Context, requested []quiz.TopicRequest) error {
	if len(requested) == 0 {
		return fmt.Errorf("no topics selected")
	}

	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return fmt.Errorf("session already started")
	}
	s.state = StateLoadingFirst
	s.totalSets = len(requested)
	s.mu.Unlock()

	prof, err := s.profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	first := s.resolver.Resolve(ctx, requested[:1], s.difficulty, s.lang, prof)
	if len(first) == 0 || len(first[0].Questions) == 0 {
		return fmt.Errorf("no questions resolved for %s", requested[0].DisplayLabel)
	}

	s.mu.Lock()
	s.current = &first[0]
	s.questionAt = 0
	s.state = StatePlaying

	rest := requested[1:]
	if len(rest) > 0 {
		bg := &prefetch{done: make(chan struct{})}
		s.background = bg
		go func() {
			bg.sets = s.resolver.Resolve(ctx, rest, s.difficulty, s.lang, prof)
			close(bg.done)
		}()
	}
	s.mu.Unlock()

	return nil
}

// Current returns the active question, or nil between topics.
func (s *Session) Current() *quiz.QuestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.questionAt >= len(s.current.Questions) {
		return nil
	}
	q := s.current.Questions[s.questionAt]
	return &q
}

// CurrentTopic returns the active topic, or a zero request when none.
func (s *Session) CurrentTopic() quiz.TopicRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return quiz.TopicRequest{}
	}
	return s.current.Topic
}

// Progress reports played and total topic counts.
func (s *Session) Progress() (played, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed), s.totalSets
}

// SubmitResult describes the effect of one confirmed answer.
type SubmitResult struct {
	Correct     bool
	Explanation string

	// TopicDone is set when the answer closed out the current topic.
	TopicDone bool

	// SessionDone is set when every requested topic has been played.
	SessionDone bool
}

// SubmitAnswer confirms the selected option for the current question.
// Input is locked while an answer settles so a double confirm cannot
// slip through.
func (s *Session) SubmitAnswer(ctx context.Context, selected string) (*SubmitResult, error) {
	s.mu.Lock()
	if s.state != StatePlaying {
		s.mu.Unlock()
		return nil, fmt.Errorf("no active question in state %s", s.state)
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, fmt.Errorf("answer already settling")
	}
	if s.current == nil || s.questionAt >= len(s.current.Questions) {
		s.mu.Unlock()
		return nil, fmt.Errorf("no active question")
	}
	s.submitting = true
	q := s.current.Questions[s.questionAt]
	s.mu.Unlock()

	res := &SubmitResult{
		Correct:     selected == q.CorrectOption,
		Explanation: q.Explanation,
	}

	if s.config.AdvanceDelay > 0 {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.submitting = false
			s.mu.Unlock()
			return nil, ctx.Err()
		case <-time.After(s.config.AdvanceDelay):
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	s.answers = append(s.answers, quiz.Answer{
		QuestionID:     q.ID,
		Prompt:         q.Prompt,
		SelectedOption: selected,
		CorrectOption:  q.CorrectOption,
		IsCorrect:      res.Correct,
		Explanation:    q.Explanation,
	})

	s.questionAt++
	if s.questionAt < len(s.current.Questions) {
		return res, nil
	}

	// Topic finished: seal the batch.
	s.completed = append(s.completed, quiz.Batch{
		Topic:   s.current.Topic,
		Answers: s.answers,
	})
	s.current = nil
	s.answers = nil
	res.TopicDone = true
	res.SessionDone = len(s.completed) >= s.totalSets
	return res, nil
}

// NextTopic activates the next queued set. When the queue drained
// before the background prefetch finished, it waits on the prefetch
// handle; the wait is interrupted by ctx.
func (s *Session) NextTopic(ctx context.Context) error {
	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		return fmt.Errorf("current topic still active")
	}
	if len(s.completed) >= s.totalSets {
		s.mu.Unlock()
		return fmt.Errorf("all topics played")
	}

	if len(s.queue) == 0 && s.background != nil {
		bg := s.background
		s.state = StateWaitingForBackground
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.state = StatePlaying
			s.mu.Unlock()
			return ctx.Err()
		case <-bg.done:
		}

		s.mu.Lock()
		s.queue = append(s.queue, bg.sets...)
		s.background = nil
	}

	if len(s.queue) == 0 {
		s.state = StatePlaying
		s.mu.Unlock()
		return fmt.Errorf("no further topics available")
	}

	next := s.queue[0]
	s.queue = s.queue[1:]
	s.current = &next
	s.questionAt = 0
	s.state = StatePlaying
	s.mu.Unlock()
	return nil
}

// Finish evaluates every completed batch, persists rating and history
// updates, and closes the session. The evaluation reports come back in
// play order. Persistence is best effort: a failed profile save or
// history append is logged and the session still reaches Done.
func (s *Session) Finish(ctx context.Context) ([]quiz.EvaluationResult, error) {
	s.mu.Lock()
	if s.state == StateDone {
		s.mu.Unlock()
		return nil, fmt.Errorf("session already finished")
	}
	if len(s.completed) == 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("nothing to evaluate")
	}
	s.state = StateEvaluating
	batches := make([]quiz.Batch, len(s.completed))
	copy(batches, s.completed)
	s.mu.Unlock()

	prof, err := s.profiles.Get(ctx)
	if err != nil {
		// Rating updates are best effort; the session still closes out.
		fmt.Fprintf(os.Stderr, "warning: profile load failed, skipping rating update: %v\n", err)
		prof = nil
	}

	outcomes := make([]rating.RoundOutcome, 0, len(batches))
	for i := range batches {
		b := &batches[i]
		ids := make([]int, 0, len(b.Answers))
		for _, a := range b.Answers {
			ids = append(ids, a.QuestionID)
		}
		outcomes = append(outcomes, rating.RoundOutcome{
			Topic:      b.Topic,
			Difficulty: s.difficulty,
			Score:      b.Score(),
			AnsweredID: ids,
		})
	}
	if prof != nil {
		rating.UpdateProfile(prof, outcomes)
		if err := s.profiles.Save(ctx, prof); err != nil {
			fmt.Fprintf(os.Stderr, "warning: profile save failed, rating update lost: %v\n", err)
		}
	}

	for i := range batches {
		b := &batches[i]
		err := s.events.AppendQuizResult(ctx, store.QuizResultData{
			SessionID:  s.ID,
			CategoryID: b.Topic.CategoryID,
			TopicID:    b.Topic.StableID,
			Score:      b.Score(),
			AIScore:    s.difficulty.AIBenchmark(),
			Difficulty: string(s.difficulty),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history append failed for %s: %v\n", b.Topic.StableID, err)
		}
	}

	demo := evaluate.Demographics{}
	if prof != nil {
		demo = evaluate.Demographics{AgeGroup: prof.AgeGroup, Nationality: prof.Nationality}
	}
	results := s.evaluator.Evaluate(ctx, batches, demo, s.lang)

	s.mu.Lock()
	s.state = StateDone
	s.mu.Unlock()
	return results, nil
}
