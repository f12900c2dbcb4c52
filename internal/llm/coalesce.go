package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// CoalescingProvider is a decorator that collapses concurrent identical
// requests into a single upstream call. All callers waiting on the same
// key receive the same result. The key tracks only in-flight work, so a
// repeat request issued after the first settles goes upstream again.
type CoalescingProvider struct {
	inner Provider
	group singleflight.Group
}

// WithCoalescing wraps a Provider with request coalescing.
func WithCoalescing(p Provider) Provider {
	return &CoalescingProvider{inner: p}
}

func (c *CoalescingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key := requestKey(c.inner.ModelID(), req)

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.inner.Generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	// Hand each caller its own Response struct. Content is shared but
	// treated as read-only by all consumers.
	resp := *(v.(*Response))
	return &resp, nil
}

func (c *CoalescingProvider) ModelID() string {
	return c.inner.ModelID()
}

// requestKey derives a stable key from everything that affects the
// upstream call: model, prompts, schema, and sampling parameters.
func requestKey(model string, req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%.3f\x00%d\x00", model, req.System, req.Temperature, req.MaxTokens)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s\x00%s\x00", m.Role, m.Content)
	}
	if req.Schema != nil {
		def, _ := json.Marshal(req.Schema.Definition)
		fmt.Fprintf(h, "%s\x00%s", req.Schema.Name, def)
	}
	return hex.EncodeToString(h.Sum(nil))
}
