package rating

import (
	"testing"

	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/store"
)

func TestDeltaBands(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{100, 30},
		{80, 30},
		{79, 10},
		{60, 10},
		{59, -10},
		{40, -10},
		{39, -20},
		{0, -20},
	}
	for _, tt := range tests {
		if got := Delta(tt.score); got != tt.want {
			t.Errorf("Delta(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestApplyClampsAtZero(t *testing.T) {
	if got := Apply(10, 0); got != 0 {
		t.Errorf("Apply(10, 0) = %d, want 0", got)
	}
	if got := Apply(1000, 100); got != 1030 {
		t.Errorf("Apply(1000, 100) = %d, want 1030", got)
	}
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		rating int
		want   Level
	}{
		{0, LevelBeginner},
		{799, LevelBeginner},
		{800, LevelIntermediate},
		{1199, LevelIntermediate},
		{1200, LevelAdvanced},
		{1599, LevelAdvanced},
		{1600, LevelExpert},
		{2400, LevelExpert},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.rating); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != 1000 {
		t.Errorf("Aggregate(nil) = %d, want 1000", got)
	}
	if got := Aggregate(map[string]int{"a": 900, "b": 1100}); got != 1000 {
		t.Errorf("Aggregate = %d, want 1000", got)
	}
}

func TestUpdateProfile(t *testing.T) {
	p := &store.Profile{
		Ratings:         map[string]int{},
		SeenQuestionIDs: map[int]bool{},
		HighScores:      map[string]int{"Genetics": 60},
	}

	topic := quiz.TopicRequest{DisplayLabel: "Genetics", StableID: "Genetics", CategoryID: "Science"}
	UpdateProfile(p, []RoundOutcome{
		{Topic: topic, Difficulty: quiz.DifficultyMedium, Score: 80, AnsweredID: []int{1, 2, 3}},
	})

	if got := p.Rating("Science"); got != 1030 {
		t.Errorf("Science rating = %d, want 1030", got)
	}
	if !p.SeenQuestionIDs[2] {
		t.Error("answered id 2 not marked seen")
	}
	if p.HighScores["Genetics"] != 80 {
		t.Errorf("high score = %d, want 80", p.HighScores["Genetics"])
	}

	// A weaker later round keeps the high score.
	UpdateProfile(p, []RoundOutcome{
		{Topic: topic, Difficulty: quiz.DifficultyMedium, Score: 40, AnsweredID: []int{4}},
	})
	if p.HighScores["Genetics"] != 80 {
		t.Errorf("high score dropped to %d", p.HighScores["Genetics"])
	}
	if got := p.Rating("Science"); got != 1020 {
		t.Errorf("Science rating after weak round = %d, want 1020", got)
	}
}

// Ratings must keep climbing while rounds keep scoring in the top band.
func TestRatingMonotonicUnderStrongPlay(t *testing.T) {
	r := 1000
	for i := 0; i < 5; i++ {
		next := Apply(r, 85)
		if next <= r {
			t.Fatalf("rating did not increase: %d -> %d", r, next)
		}
		r = next
	}
	if r != 1150 {
		t.Errorf("final rating = %d, want 1150", r)
	}
}
