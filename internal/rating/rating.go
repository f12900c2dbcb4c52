// Package rating implements the adaptive skill rating: per-category
// scores move after each round based on performance bands, and the
// current rating selects the proficiency level fed into generation
// prompts.
package rating

import "github.com/abhisek/quizclash/internal/quiz"

// Level is the proficiency label derived from a rating.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

// Delta returns the rating adjustment for a round score. Bands reward
// strong rounds more than they punish weak ones at the top, and the
// reverse at the bottom, so ratings drift toward true skill.
func Delta(score int) int {
	switch {
	case score >= 80:
		return 30
	case score >= 60:
		return 10
	case score >= 40:
		return -10
	default:
		return -20
	}
}

// Apply moves a rating by the delta for score, clamping at zero.
func Apply(rating, score int) int {
	next := rating + Delta(score)
	if next < 0 {
		return 0
	}
	return next
}

// LevelFor maps a rating to its proficiency level.
func LevelFor(rating int) Level {
	switch {
	case rating < 800:
		return LevelBeginner
	case rating < 1200:
		return LevelIntermediate
	case rating < 1600:
		return LevelAdvanced
	default:
		return LevelExpert
	}
}

// Aggregate returns the mean rating across the player's rated
// categories, or the default when none have been played.
func Aggregate(ratings map[string]int) int {
	if len(ratings) == 0 {
		return 1000
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RoundOutcome summarizes one completed topic round for profile updates.
type RoundOutcome struct {
	Topic      quiz.TopicRequest
	Difficulty quiz.Difficulty
	Score      int
	AnsweredID []int
}
