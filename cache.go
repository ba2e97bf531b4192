package gearpress

import (
	"sync"
	"time"

	"github.com/gearpress/gearpress/views"
)

// FeedCache is an in-memory cache of the public post feed with a TTL. Every
// mutation through the admin handlers calls Invalidate, so public reads
// after a write always see fresh data.
type FeedCache struct {
	mu      sync.RWMutex
	posts   []views.Post
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewFeedCache creates a FeedCache backed by the given Store.
func NewFeedCache(s *Store, ttl time.Duration) *FeedCache {
	return &FeedCache{store: s, ttl: ttl}
}

func (c *FeedCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *FeedCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ListPosts returns the cached feed, reloading from the store when stale.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *FeedCache) ListPosts() ([]views.Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.store.ListPosts()
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []views.Post{}
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}
