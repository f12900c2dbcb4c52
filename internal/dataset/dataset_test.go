package dataset

import (
	"testing"

	"github.com/abhisek/quizclash/internal/quiz"
	"github.com/abhisek/quizclash/internal/topics"
)

func TestQuestionsHit(t *testing.T) {
	idx := NewIndex()

	got := idx.Questions(topics.CategoryScience, "Quantum Physics", quiz.DifficultyHard, quiz.LangEnglish)
	if len(got) != 5 {
		t.Fatalf("Questions(Quantum Physics, HARD, en) = %d records, want 5", len(got))
	}
	if got[0].ID != 101 {
		t.Errorf("first record id = %d, want 101", got[0].ID)
	}
	for _, q := range got {
		if err := q.Validate(); err != nil {
			t.Errorf("embedded record %d invalid: %v", q.ID, err)
		}
	}
}

func TestQuestionsLocalized(t *testing.T) {
	idx := NewIndex()

	got := idx.Questions(topics.CategoryHistory, "Ancient Egypt", quiz.DifficultyMedium, quiz.LangKorean)
	if len(got) != 5 {
		t.Fatalf("Questions(Ancient Egypt, MEDIUM, ko) = %d records, want 5", len(got))
	}
}

func TestQuestionsMiss(t *testing.T) {
	idx := NewIndex()

	// Bank exists but the key does not.
	if got := idx.Questions(topics.CategoryScience, "Quantum Physics", quiz.DifficultyEasy, quiz.LangEnglish); got != nil {
		t.Errorf("unexpected records for missing key: %v", got)
	}
	// No bank file for this category at all.
	if got := idx.Questions("Podcasts", "True Crime", quiz.DifficultyEasy, quiz.LangEnglish); got != nil {
		t.Errorf("unexpected records for bankless category: %v", got)
	}
}

func TestQuestionsEveryCategoryBanked(t *testing.T) {
	idx := NewIndex()

	// One known key per category bank.
	cases := []struct {
		category   string
		stableID   string
		difficulty quiz.Difficulty
	}{
		{topics.CategoryGeography, "Capitals", quiz.DifficultyMedium},
		{topics.CategoryMovies, "Marvel Cinematic Universe", quiz.DifficultyEasy},
		{topics.CategoryGeneral, "Inventions", quiz.DifficultyMedium},
		{topics.CategorySports, "Soccer", quiz.DifficultyEasy},
	}
	for _, p := range cases {
		got := idx.Questions(p.category, p.stableID, p.difficulty, quiz.LangEnglish)
		if len(got) == 0 {
			t.Errorf("Questions(%s, %s, %s, en) returned nothing", p.category, p.stableID, p.difficulty)
			continue
		}
		for _, q := range got {
			if err := q.Validate(); err != nil {
				t.Errorf("%s record %d invalid: %v", p.stableID, q.ID, err)
			}
		}
		// Korean mirror with the same stable ids.
		ko := idx.Questions(p.category, p.stableID, p.difficulty, quiz.LangKorean)
		if len(ko) != len(got) {
			t.Errorf("%s: ko bank has %d records, en has %d", p.stableID, len(ko), len(got))
		}
	}
}

func TestQuestionsPartialSet(t *testing.T) {
	idx := NewIndex()

	// The Food bank deliberately holds fewer than a full set; callers
	// must cope with short banks.
	got := idx.Questions(topics.CategoryFood, "Italian Cuisine", quiz.DifficultyEasy, quiz.LangEnglish)
	if len(got) != 1 {
		t.Fatalf("Questions(Italian Cuisine, EASY, en) = %d records, want 1", len(got))
	}
	if got[0].ID != 1601 {
		t.Errorf("record id = %d, want 1601", got[0].ID)
	}
}

func TestKeyPreservesCase(t *testing.T) {
	got := Key("Quantum Physics", quiz.DifficultyHard, quiz.LangKorean)
	want := "Quantum Physics_HARD_ko"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}
