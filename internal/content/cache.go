package content

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Kind labels the shape of material requested for a topic.
type Kind string

const (
	KindSummary       Kind = "summary"
	KindRevisionNotes Kind = "revision_notes"
	KindFullChapter   Kind = "full_chapter"
	KindPracticeQuiz  Kind = "practice_quiz"
)

// ErrNotFound is returned by Get when no entry exists for the key.
var ErrNotFound = errors.New("content: cache entry not found")

// Key builds the composite cache key from a topic and content kind.
// The topic is normalized (trimmed, inner whitespace collapsed) so that
// cosmetic variations of the same topic share an entry.
func Key(topic string, kind Kind) string {
	normalized := strings.Join(strings.Fields(topic), " ")
	return normalized + "::" + string(kind)
}

// FetchFunc produces the material for a cache miss. Implementations call
// the external generation collaborator.
type FetchFunc func(ctx context.Context) (string, error)

// Cache memoizes generated study material per (topic, content-kind) key
// for the lifetime of a study-plan session. Entries are written once and
// treated as authoritative until an explicit forced refresh overwrites
// them wholesale. A failed fetch leaves the cache unchanged.
//
// Concurrent fetches for the same unpopulated key are de-duplicated
// through a singleflight group: the first caller issues the fetch and
// later callers share its result. Forced refreshes bypass the group so
// they are never coalesced with an in-flight plain fetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	flight  singleflight.Group
}

// NewCache creates an empty material cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached value for key, or ErrNotFound.
func (c *Cache) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// GetOrFetch returns the cached value for key, fetching and storing it
// when missing or when force is set. The fetcher is invoked at most once
// per key across concurrent callers unless force is set.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc, force bool) (string, error) {
	if force {
		v, err := fetch(ctx)
		if err != nil {
			return "", err
		}
		c.put(key, v)
		return v, nil
	}

	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// Re-check under the flight: a forced refresh may have landed
		// while this call was queued.
		if v, err := c.Get(key); err == nil {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return "", err
		}
		c.put(key, v)
		return v, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate removes the entry for key, if any.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear discards every entry. Called when the user leaves the plan or
// requests a hard refresh.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Seed loads entries without invoking fetchers, used to rehydrate the
// cache from the persisted store at session start.
func (c *Cache) Seed(entries map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range entries {
		c.entries[k] = v
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}
