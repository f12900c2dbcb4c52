package rating

import "github.com/abhisek/quizclash/internal/store"

// UpdateProfile folds completed round outcomes into the profile:
// category ratings move by the score band, answered questions join the
// seen set, and per-topic high scores are raised. The caller persists
// the profile afterwards.
func UpdateProfile(p *store.Profile, outcomes []RoundOutcome) {
	for _, o := range outcomes {
		cat := o.Topic.CategoryID
		p.Ratings[cat] = Apply(p.Rating(cat), o.Score)

		for _, id := range o.AnsweredID {
			p.SeenQuestionIDs[id] = true
		}

		if o.Score > p.HighScores[o.Topic.StableID] {
			p.HighScores[o.Topic.StableID] = o.Score
		}
	}
}
