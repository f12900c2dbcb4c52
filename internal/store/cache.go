package store

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizclash/ent"
	"github.com/abhisek/quizclash/ent/cacheentry"
	"github.com/abhisek/quizclash/internal/quiz"
)

// cacheRepo implements CacheRepo using the ent client.
type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Get(ctx context.Context, key string) ([]quiz.QuestionRecord, error) {
	row, err := r.client.CacheEntry.Query().
		Where(cacheentry.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cache entry: %w", err)
	}

	records, err := quiz.DecodeRecords([]byte(row.Payload))
	if err != nil {
		// A corrupt entry is treated as a miss and removed so the next
		// resolution overwrites it.
		_, _ = r.client.CacheEntry.Delete().Where(cacheentry.Key(key)).Exec(ctx)
		return nil, nil
	}
	return records, nil
}

// Put stores records under a key. On a write failure the whole cache is
// cleared to reclaim space and the write retried once; a second failure
// drops the entry without surfacing an error, since the cache is an
// optimization and never a correctness requirement.
func (r *cacheRepo) Put(ctx context.Context, key string, records []quiz.QuestionRecord) error {
	payload, err := quiz.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}

	write := func(ctx context.Context) error { return r.upsert(ctx, key, string(payload)) }
	putWithRecovery(ctx, key, write, r.Clear)
	return nil
}

// putWithRecovery runs the write, and on failure clears the cache to
// reclaim space and retries exactly once. Nothing is surfaced: failures
// are logged and the entry is dropped.
func putWithRecovery(ctx context.Context, key string, write, clear func(context.Context) error) {
	if err := write(ctx); err == nil {
		return
	}

	if err := clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache clear failed: %v\n", err)
		return
	}
	if err := write(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cache write dropped for %s: %v\n", key, err)
	}
}

func (r *cacheRepo) Clear(ctx context.Context) error {
	_, err := r.client.CacheEntry.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func (r *cacheRepo) upsert(ctx context.Context, key, payload string) error {
	return r.client.CacheEntry.Create().
		SetKey(key).
		SetPayload(payload).
		OnConflictColumns(cacheentry.FieldKey).
		UpdateNewValues().
		Exec(ctx)
}
