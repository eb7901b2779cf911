// Package idempotency remembers the create requests that carried an idempotency key.
//
// A key is claimed once. Every later request with the same key gets the outcome
// of the first one instead of creating another record. Keys are forgotten after
// a TTL or when the cache is full, whichever comes first.
package idempotency

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Entry is the state of a claimed key.
type Entry struct {
	// Done is false while the first request is still being processed
	Done  bool
	Value any
	Err   error
}

// Cache is a bounded cache of claimed keys.
type Cache struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, Entry]
}

// New returns a cache holding at most size keys for at most ttl each.
func New(size int, ttl time.Duration) *Cache {
	return &Cache{
		entries: expirable.NewLRU[string, Entry](size, nil, ttl),
	}
}

// Key scopes a client supplied token, e.g. by department and record family.
func Key(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

// Claim reserves the key. It returns true if the key was not known.
//
// If the key was already claimed, the entry of the first claim is returned
// together with false.
func (c *Cache) Claim(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries.Get(key); ok {
		return e, false
	}

	c.entries.Add(key, Entry{})
	return Entry{}, true
}

// Complete stores the outcome of the request that claimed the key.
//
// The key stays consumed when err is not nil, a retry gets the same error.
func (c *Cache) Complete(key string, value any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, Entry{Done: true, Value: value, Err: err})
}

// Len returns the number of keys in the cache.
func (c *Cache) Len() int {
	return c.entries.Len()
}
