// Package content resolves topics into playable question sets. Each
// topic walks a tiered source chain: the embedded question bank, the
// persistent cache, translation of master-language bank data, and
// finally batched LLM generation. Cheaper tiers always win, and the
// player never sees a question twice.
package content

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/abhisek/quizclash/internal/dataset"
	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/quizgen"
	"github.com/abhisek/quizclash/internal/store"
)

// BatchGenerator is the slice of the generator the engine needs.
type BatchGenerator interface {
	GenerateBatch(ctx context.Context, in quizgen.BatchInput) (map[string][]quiz.QuestionRecord, error)
	Translate(ctx context.Context, records []quiz.QuestionRecord, lang quiz.Language) ([]quiz.QuestionRecord, error)
}

// Engine resolves topic requests through the tiered source chain.
type Engine struct {
	data  *dataset.Index
	cache store.CacheRepo
	gen   BatchGenerator
}

// NewEngine creates an Engine over the embedded bank, the cache, and
// the generator. A nil generator disables the translation and
// generation tiers; affected topics get the emergency fallback set.
func NewEngine(data *dataset.Index, cache store.CacheRepo, gen BatchGenerator) *Engine {
	return &Engine{data: data, cache: cache, gen: gen}
}

// pending tracks a topic still unresolved after the local tiers.
type pending struct {
	index  int
	topic  quiz.TopicRequest
	master []quiz.QuestionRecord // unseen master-language records, set on the translation path
}

// Resolve produces one question set per requested topic, in input
// order. Local tiers are consulted first; every remaining topic shares
// a single generation call, and a topic that fails even that gets the
// emergency fallback set. Resolve never fails outright.
func (e *Engine) Resolve(ctx context.Context, topics []quiz.TopicRequest, difficulty quiz.Difficulty, lang quiz.Language, prof *store.Profile) []quiz.Set {
	results := make([]quiz.Set, len(topics))
	var toTranslate, toGenerate []pending

	for i, topic := range topics {
		// Tier 1: embedded question bank in the target language.
		banked := unseen(e.data.Questions(topic.CategoryID, topic.StableID, difficulty, lang), prof)

		// Tier 2: persistent cache. Union with the bank so two thin
		// sources still make a full round.
		key := quiz.CacheKey(topic.StableID, difficulty, lang)
		cached, err := e.cache.Get(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache read failed for %s: %v\n", key, err)
		}
		pool := mergeByID(banked, unseen(cached, prof))
		if len(pool) >= quiz.QuestionsPerSet {
			results[i] = quiz.Set{Topic: topic, Questions: sample(pool, quiz.QuestionsPerSet)}
			continue
		}

		// Tier 3: master-language bank data, translated on demand.
		if lang != quiz.MasterLanguage && e.gen != nil {
			master := unseen(e.data.Questions(topic.CategoryID, topic.StableID, difficulty, quiz.MasterLanguage), prof)
			if len(master) > 0 {
				if len(master) > quiz.QuestionsPerSet {
					master = master[:quiz.QuestionsPerSet]
				}
				toTranslate = append(toTranslate, pending{index: i, topic: topic, master: master})
				continue
			}
		}

		// Tier 4: batched generation.
		toGenerate = append(toGenerate, pending{index: i, topic: topic})
	}

	for _, p := range toTranslate {
		translated, err := e.gen.Translate(ctx, p.master, lang)
		if err != nil {
			// Raw generation is the next best thing.
			toGenerate = append(toGenerate, pending{index: p.index, topic: p.topic})
			continue
		}
		key := quiz.CacheKey(p.topic.StableID, difficulty, lang)
		if err := e.cache.Put(ctx, key, translated); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache write failed for %s: %v\n", key, err)
		}
		results[p.index] = quiz.Set{Topic: p.topic, Questions: translated}
	}

	if len(toGenerate) > 0 {
		e.generate(ctx, toGenerate, difficulty, lang, prof, results)
	}

	return results
}

// generate fills the remaining slots with one batched LLM call. Topics
// the call cannot serve fall back to the emergency set.
func (e *Engine) generate(ctx context.Context, missing []pending, difficulty quiz.Difficulty, lang quiz.Language, prof *store.Profile, results []quiz.Set) {
	in := quizgen.BatchInput{
		Difficulty: difficulty,
		Language:   lang,
		AgeGroup:   prof.AgeGroup,
	}
	for _, p := range missing {
		in.Topics = append(in.Topics, quizgen.TopicPrompt{
			Topic:  p.topic,
			Rating: prof.Rating(p.topic.CategoryID),
		})
	}

	var generated map[string][]quiz.QuestionRecord
	if e.gen != nil {
		var err error
		generated, err = e.gen.GenerateBatch(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: batch generation failed: %v\n", err)
			generated = nil
		}
	}

	for _, p := range missing {
		records, ok := generated[p.topic.StableID]
		if !ok {
			results[p.index] = quiz.Set{Topic: p.topic, Questions: quizgen.FallbackSet()}
			continue
		}
		key := quiz.CacheKey(p.topic.StableID, difficulty, lang)
		if err := e.cache.Put(ctx, key, records); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache write failed for %s: %v\n", key, err)
		}
		if len(records) > quiz.QuestionsPerSet {
			records = sample(records, quiz.QuestionsPerSet)
		}
		results[p.index] = quiz.Set{Topic: p.topic, Questions: records}
	}
}

// unseen filters out questions the player has already answered.
func unseen(records []quiz.QuestionRecord, prof *store.Profile) []quiz.QuestionRecord {
	if len(records) == 0 {
		return nil
	}
	out := make([]quiz.QuestionRecord, 0, len(records))
	for _, r := range records {
		if !prof.SeenQuestionIDs[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// mergeByID unions two record lists, keeping the first occurrence of
// each id.
func mergeByID(a, b []quiz.QuestionRecord) []quiz.QuestionRecord {
	if len(b) == 0 {
		return a
	}
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]quiz.QuestionRecord, 0, len(a)+len(b))
	for _, r := range a {
		if !seen[r.ID] {
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	for _, r := range b {
		if !seen[r.ID] {
			seen[r.ID] = true
			out = append(out, r)
		}
	}
	return out
}

// sample picks n records uniformly without replacement.
func sample(records []quiz.QuestionRecord, n int) []quiz.QuestionRecord {
	out := make([]quiz.QuestionRecord, len(records))
	copy(out, records)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
