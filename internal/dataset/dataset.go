// Package dataset serves the build-time question bank. Banks are JSON
// files embedded per category, keyed by "StableID_DIFFICULTY_lang", and
// parsed lazily on first access to a category.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/quizclash/internal/quiz"
)

//go:embed questions/*.json
var bankFS embed.FS

// Index provides read-only access to the embedded question banks.
type Index struct {
	mu    sync.Mutex
	banks map[string]map[string][]quiz.QuestionRecord
}

// NewIndex creates an Index over the embedded banks.
func NewIndex() *Index {
	return &Index{banks: make(map[string]map[string][]quiz.QuestionRecord)}
}

// Key builds the exact-case dataset key for a topic. The bank keys keep
// the stable id's casing, unlike cache keys which are lower-cased.
func Key(stableID string, difficulty quiz.Difficulty, lang quiz.Language) string {
	return fmt.Sprintf("%s_%s_%s", stableID, difficulty, lang)
}

// Questions returns the bank entry for a topic, or nil when the
// category has no bank or the key is absent.
func (x *Index) Questions(categoryID, stableID string, difficulty quiz.Difficulty, lang quiz.Language) []quiz.QuestionRecord {
	bank, err := x.load(categoryID)
	if err != nil || bank == nil {
		return nil
	}
	return bank[Key(stableID, difficulty, lang)]
}

// load parses a category's bank on first use.
func (x *Index) load(categoryID string) (map[string][]quiz.QuestionRecord, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if bank, ok := x.banks[categoryID]; ok {
		return bank, nil
	}

	name := fmt.Sprintf("questions/%s.json", strings.ToLower(categoryID))
	raw, err := bankFS.ReadFile(name)
	if err != nil {
		// No bank for this category. Cache the miss.
		x.banks[categoryID] = nil
		return nil, nil
	}

	var bank map[string][]quiz.QuestionRecord
	if err := json.Unmarshal(raw, &bank); err != nil {
		x.banks[categoryID] = nil
		return nil, fmt.Errorf("parse bank %s: %w", name, err)
	}

	x.banks[categoryID] = bank
	return bank, nil
}
