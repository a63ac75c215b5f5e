package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "doc:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss before Set")
	}

	// Round trip
	if err := c.Set(ctx, "doc:abc", []byte("<html></html>"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "doc:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "<html></html>" {
		t.Errorf("Get = %q, want %q", data, "<html></html>")
	}

	// Expired entries behave as misses
	if err := c.Set(ctx, "doc:ttl", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "doc:ttl")
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Delete
	if err := c.Delete(ctx, "doc:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "doc:abc")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting an absent key is fine
	if err := c.Delete(ctx, "doc:missing"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestScopedCache(t *testing.T) {
	ctx := context.Background()
	backing, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer backing.Close()

	a := NewScopedCache(backing, "serve:")
	b := NewScopedCache(backing, "batch:")

	if err := a.Set(ctx, "key", []byte("from-a"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Scopes do not see each other's keys
	_, hit, _ := b.Get(ctx, "key")
	if hit {
		t.Error("scoped caches should not share keys")
	}

	data, hit, _ := a.Get(ctx, "key")
	if !hit || string(data) != "from-a" {
		t.Errorf("scoped Get = %q, %v", data, hit)
	}

	// The backing cache sees the prefixed key
	_, hit, _ = backing.Get(ctx, "serve:key")
	if !hit {
		t.Error("backing cache should hold the prefixed key")
	}
}

func TestScopedCacheNilInner(t *testing.T) {
	c := NewScopedCache(nil, "prefix:")
	_, hit, err := c.Get(context.Background(), "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("nil inner should behave as a null cache")
	}
}

func TestDocumentKey(t *testing.T) {
	input := []byte(`{"header":{"character_name":"Ember"}}`)

	k1 := DocumentKey(input)
	k2 := DocumentKey(input)
	if k1 != k2 {
		t.Error("DocumentKey should be deterministic")
	}

	// Different inputs change the key
	if k1 == DocumentKey([]byte(`{}`)) {
		t.Error("different inputs should produce different keys")
	}

	// Options change the key
	if k1 == DocumentKey(input, "pdf") {
		t.Error("different options should produce different keys")
	}

	if k1[:4] != "doc:" {
		t.Errorf("DocumentKey should carry the doc prefix: %s", k1)
	}
}
