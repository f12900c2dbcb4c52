// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CacheEntry is the predicate function for cacheentry builders.
type CacheEntry func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// QuizResultEvent is the predicate function for quizresultevent builders.
type QuizResultEvent func(*sql.Selector)
