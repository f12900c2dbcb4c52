package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/quizclash/ent"
)

// profileRepo implements ProfileRepo using the ent client. The profile
// is a singleton row created on first save.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context) (*Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return newEmptyProfile(), nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	p := newEmptyProfile()
	p.Gender = row.Gender
	p.AgeGroup = row.AgeGroup
	p.Nationality = row.Nationality
	for k, v := range row.Ratings {
		p.Ratings[k] = v
	}
	for _, id := range row.SeenQuestions {
		p.SeenQuestionIDs[id] = true
	}
	for k, v := range row.HighScores {
		p.HighScores[k] = v
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	seen := make([]int, 0, len(p.SeenQuestionIDs))
	for id := range p.SeenQuestionIDs {
		seen = append(seen, id)
	}
	sort.Ints(seen)

	existing, err := r.client.Profile.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.Profile.Create().
			SetGender(p.Gender).
			SetAgeGroup(p.AgeGroup).
			SetNationality(p.Nationality).
			SetRatings(p.Ratings).
			SetSeenQuestions(seen).
			SetHighScores(p.HighScores).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetGender(p.Gender).
			SetAgeGroup(p.AgeGroup).
			SetNationality(p.Nationality).
			SetRatings(p.Ratings).
			SetSeenQuestions(seen).
			SetHighScores(p.HighScores).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func newEmptyProfile() *Profile {
	return &Profile{
		Ratings:         make(map[string]int),
		SeenQuestionIDs: make(map[int]bool),
		HighScores:      make(map[string]int),
	}
}
