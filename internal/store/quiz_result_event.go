package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizclash/ent"
	"github.com/abhisek/quizclash/ent/quizresultevent"
	"github.com/abhisek/quizclash/internal/quiz"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCategoryID(data.CategoryID).
		SetTopicID(data.TopicID).
		SetScore(data.Score).
		SetAiScore(data.AIScore).
		SetDifficulty(data.Difficulty).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}

	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, limit int) ([]quiz.HistoryEntry, error) {
	q := r.client.QuizResultEvent.Query().
		Order(ent.Desc(quizresultevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	entries := make([]quiz.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, quiz.HistoryEntry{
			Timestamp:  row.Timestamp,
			CategoryID: row.CategoryID,
			Score:      row.Score,
			AIScore:    row.AiScore,
			Difficulty: quiz.Difficulty(row.Difficulty),
		})
	}
	return entries, nil
}
