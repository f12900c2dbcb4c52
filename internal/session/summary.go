package session

// Summary aggregates a finished session for display.
type Summary struct {
	Topics         int
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	AIBenchmark    int
	TopicScores    []TopicScore
}

// TopicScore is one topic's line in the summary.
type TopicScore struct {
	Label   string
	Score   int
	Correct int
	Total   int
}

// BuildSummary folds the session's completed batches into a Summary.
func (s *Session) BuildSummary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := &Summary{
		Topics:      len(s.completed),
		AIBenchmark: s.difficulty.AIBenchmark(),
	}

	for i := range s.completed {
		b := &s.completed[i]
		correct := 0
		for _, a := range b.Answers {
			sum.TotalQuestions++
			if a.IsCorrect {
				correct++
				sum.TotalCorrect++
			}
		}
		sum.TopicScores = append(sum.TopicScores, TopicScore{
			Label:   b.Topic.DisplayLabel,
			Score:   b.Score(),
			Correct: correct,
			Total:   len(b.Answers),
		})
	}

	if sum.TotalQuestions > 0 {
		sum.Accuracy = float64(sum.TotalCorrect) / float64(sum.TotalQuestions)
	}
	return sum
}
