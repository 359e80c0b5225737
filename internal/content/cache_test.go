package content

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func countingFetch(value string, calls *atomic.Int32) FetchFunc {
	return func(context.Context) (string, error) {
		calls.Add(1)
		return value, nil
	}
}

func TestKey_NormalizesTopic(t *testing.T) {
	tests := []struct {
		topic string
		kind  Kind
		want  string
	}{
		{"Algebra", KindSummary, "Algebra::summary"},
		{"  Algebra  ", KindSummary, "Algebra::summary"},
		{"Linear   Equations", KindRevisionNotes, "Linear Equations::revision_notes"},
	}
	for _, tt := range tests {
		if got := Key(tt.topic, tt.kind); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.topic, tt.kind, got, tt.want)
		}
	}
}

func TestGetOrFetch_FetchesOncePerKey(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	var calls atomic.Int32
	key := Key("Algebra", KindSummary)

	v1, err := c.GetOrFetch(ctx, key, countingFetch("material", &calls), false)
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	v2, err := c.GetOrFetch(ctx, key, countingFetch("material", &calls), false)
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}

	if v1 != "material" || v2 != "material" {
		t.Errorf("values = %q, %q, want %q", v1, v2, "material")
	}
	if calls.Load() != 1 {
		t.Errorf("fetcher calls = %d, want 1", calls.Load())
	}
}

func TestGetOrFetch_ForceRefetches(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	key := Key("Algebra", KindSummary)

	var calls atomic.Int32
	if _, err := c.GetOrFetch(ctx, key, countingFetch("v1", &calls), false); err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	v, err := c.GetOrFetch(ctx, key, countingFetch("v2", &calls), true)
	if err != nil {
		t.Fatalf("GetOrFetch force: %v", err)
	}

	if v != "v2" {
		t.Errorf("forced value = %q, want v2", v)
	}
	if calls.Load() != 2 {
		t.Errorf("fetcher calls = %d, want 2", calls.Load())
	}
	if cached, _ := c.Get(key); cached != "v2" {
		t.Errorf("cached after force = %q, want full overwrite to v2", cached)
	}
}

func TestGetOrFetch_ErrorLeavesCacheUnchanged(t *testing.T) {
	c := NewCache()
	ctx := context.Background()
	key := Key("Algebra", KindSummary)
	boom := errors.New("generation failed")

	_, err := c.GetOrFetch(ctx, key, func(context.Context) (string, error) {
		return "", boom
	}, false)
	if !errors.Is(err, boom) {
		t.Errorf("GetOrFetch error = %v, want %v", err, boom)
	}
	if _, err := c.Get(key); !errors.Is(err, ErrNotFound) {
		t.Error("failed fetch must not poison the cache")
	}

	// A later successful fetch still works.
	v, err := c.GetOrFetch(ctx, key, func(context.Context) (string, error) {
		return "ok", nil
	}, false)
	if err != nil || v != "ok" {
		t.Errorf("retry after failure = (%q, %v), want (ok, nil)", v, err)
	}
}

func TestGetOrFetch_ConcurrentMissesShareOneFetch(t *testing.T) {
	c := NewCache()
	key := Key("Algebra", KindSummary)

	var calls atomic.Int32
	gate := make(chan struct{})
	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		<-gate
		return "shared", nil
	}

	const n = 8
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrFetch(context.Background(), key, fetch, false)
			if err != nil {
				t.Errorf("GetOrFetch: %v", err)
			}
			results[i] = v
		}(i)
	}
	close(gate)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetcher calls = %d, want 1 (in-flight de-dup)", got)
	}
	for i, v := range results {
		if v != "shared" {
			t.Errorf("result %d = %q, want shared", i, v)
		}
	}
}

func TestInvalidateAndClear(t *testing.T) {
	c := NewCache()
	c.Seed(map[string]string{
		Key("A", KindSummary):       "a",
		Key("B", KindRevisionNotes): "b",
	})

	c.Invalidate(Key("A", KindSummary))
	if _, err := c.Get(Key("A", KindSummary)); !errors.Is(err, ErrNotFound) {
		t.Error("expected entry gone after Invalidate")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}
