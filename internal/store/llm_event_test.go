package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendLLMEvents(t *testing.T, s *Store, events ...LLMRequestEventData) {
	t.Helper()
	ctx := context.Background()
	for _, e := range events {
		require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, e))
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	appendLLMEvents(t, s,
		LLMRequestEventData{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", Success: true},
		LLMRequestEventData{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "translate", Success: true},
		LLMRequestEventData{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "evaluate", Success: false, ErrorMessage: "timeout"},
	)

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "evaluate", events[0].Purpose)
	assert.Equal(t, "translate", events[1].Purpose)
	assert.Equal(t, "quiz-gen", events[2].Purpose)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[0].Success)
	assert.Equal(t, "timeout", events[0].ErrorMessage)
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	appendLLMEvents(t, s,
		LLMRequestEventData{Purpose: "quiz-gen", Success: true},
		LLMRequestEventData{Purpose: "translate", Success: true},
		LLMRequestEventData{Purpose: "quiz-gen", Success: true},
	)

	ctx := context.Background()
	byPurpose, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	for _, e := range byPurpose {
		assert.Equal(t, "quiz-gen", e.Purpose)
	}

	limited, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetLLMEventCapturesBodies(t *testing.T) {
	s := openTestStore(t)
	appendLLMEvents(t, s, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "evaluate",
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"results":[]}`,
	})

	ctx := context.Background()
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := s.EventRepo().GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"messages":[]}`, got.RequestBody)
	assert.Equal(t, `{"results":[]}`, got.ResponseBody)

	missing, err := s.EventRepo().GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	appendLLMEvents(t, s,
		LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		LLMRequestEventData{Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		LLMRequestEventData{Model: "gpt-4o-mini", Purpose: "evaluate", InputTokens: 40, OutputTokens: 20, LatencyMs: 100, Success: true},
	)

	ctx := context.Background()
	byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	stats := make(map[string]LLMUsageStat, len(byPurpose))
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	assert.Equal(t, 2, stats["quiz-gen"].Calls)
	assert.Equal(t, 400, stats["quiz-gen"].InputTokens)
	assert.Equal(t, 200, stats["quiz-gen"].OutputTokens)
	assert.Equal(t, int64(300), stats["quiz-gen"].AvgLatencyMs)
	assert.Equal(t, 1, stats["evaluate"].Calls)

	byModel, err := s.EventRepo().LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)

	usage := make(map[string]LLMModelUsage, len(byModel))
	for _, u := range byModel {
		usage[u.Model] = u
	}
	assert.Equal(t, 450, usage["gemini-2.5-flash"].InputTokens+usage["gemini-2.5-flash"].OutputTokens)
	assert.Equal(t, 1, usage["gpt-4o-mini"].Calls)
}
