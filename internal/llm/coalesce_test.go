package llm

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
)

// blockingProvider lets the test hold all callers inside one Generate
// call until released.
type blockingProvider struct {
	calls   atomic.Int32
	release chan struct{}
}

func (b *blockingProvider) Generate(_ context.Context, _ Request) (*Response, error) {
	b.calls.Add(1)
	<-b.release
	return &Response{Content: json.RawMessage(`{"ok":true}`), Model: "blocking"}, nil
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestCoalescingSharesInFlightCall(t *testing.T) {
	base := &blockingProvider{release: make(chan struct{})}
	p := WithCoalescing(base)

	req := Request{
		System:   "quiz generator",
		Messages: []Message{{Role: RoleUser, Content: "generate"}},
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*Response, callers)
	errs := make([]error, callers)

	started := make(chan struct{}, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			results[i], errs[i] = p.Generate(context.Background(), req)
		}()
	}

	// Wait until every goroutine has launched, then let the single
	// upstream call finish.
	for range callers {
		<-started
	}
	close(base.release)
	wg.Wait()

	for i := range callers {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if string(results[i].Content) != `{"ok":true}` {
			t.Errorf("caller %d content = %s", i, results[i].Content)
		}
	}

	// singleflight may admit more than one upstream call if a caller
	// arrives after the first settles, but with all callers held on the
	// same in-flight key there must be exactly one.
	if got := base.calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}

func TestCoalescingDistinctRequestsDoNotShare(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)
	p := WithCoalescing(mock)

	a, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "alpha"}}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "beta"}}})
	if err != nil {
		t.Fatal(err)
	}

	if string(a.Content) == string(b.Content) {
		t.Errorf("distinct requests shared a result: %s", a.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("upstream calls = %d, want 2", mock.CallCount())
	}
}

func TestCoalescingKeyCoversSchema(t *testing.T) {
	req := Request{Messages: []Message{{Role: RoleUser, Content: "x"}}}
	withSchema := req
	withSchema.Schema = &Schema{
		Name:       "quiz-set",
		Definition: map[string]any{"type": "object"},
	}

	if requestKey("m", req) == requestKey("m", withSchema) {
		t.Error("schema change did not change the coalescing key")
	}
	if requestKey("m", req) != requestKey("m", req) {
		t.Error("identical requests produced different keys")
	}
}

func TestCoalescingRetriesAfterSettle(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)
	p := WithCoalescing(mock)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "same"}}}

	first, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if string(first.Content) != `{"n":1}` || string(second.Content) != `{"n":2}` {
		t.Errorf("sequential identical requests coalesced: %s, %s", first.Content, second.Content)
	}
}
