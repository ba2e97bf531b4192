package gearpress

import (
	"testing"
	"time"

	"github.com/gearpress/gearpress/views"
)

func TestFeedCacheServesCachedUntilInvalidated(t *testing.T) {
	s := setupTestStore(t)
	cache := NewFeedCache(s, time.Hour)

	createPosts(t, s, "first")

	got, err := cache.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("count = %d, want 1", len(got))
	}

	// A write that bypasses Invalidate is not visible within the TTL.
	if _, err := s.CreatePost(views.Post{Title: "second", Description: "d"}); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	got, err = cache.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("stale read count = %d, want 1", len(got))
	}

	// After Invalidate the next read is fresh.
	cache.Invalidate()
	got, err = cache.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fresh read count = %d, want 2", len(got))
	}
	if got[0].Title != "second" {
		t.Errorf("newest post should be first, got %q", got[0].Title)
	}
}

func TestFeedCacheEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	cache := NewFeedCache(s, time.Hour)

	got, err := cache.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("count = %d, want 0", len(got))
	}
	// The empty result is cached too, not refetched on every call.
	if _, err := cache.ListPosts(); err != nil {
		t.Fatalf("second ListPosts failed: %v", err)
	}
}
