package observability

import (
	"context"
	"testing"
	"time"
)

// recordingPipelineHooks counts pipeline events for verification.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	buildStarts    int
	buildCompletes int
}

func (h *recordingPipelineHooks) OnBuildStart(context.Context, string, string) {
	h.buildStarts++
}

func (h *recordingPipelineHooks) OnBuildComplete(context.Context, string, string, int, time.Duration, error) {
	h.buildCompletes++
}

// recordingCacheHooks counts cache events for verification.
type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
	sets   int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Calls on the defaults must not panic.
	ctx := context.Background()
	Pipeline().OnLoadStart(ctx, "documents/rogue.json")
	Pipeline().OnBuildComplete(ctx, "rogue", "character", 1024, time.Second, nil)
	Cache().OnCacheHit(ctx, "document")
}

func TestSetPipelineHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	ctx := context.Background()
	Pipeline().OnBuildStart(ctx, "rogue", "character")
	Pipeline().OnBuildComplete(ctx, "rogue", "character", 1024, time.Second, nil)

	if h.buildStarts != 1 {
		t.Errorf("buildStarts = %d, want 1", h.buildStarts)
	}
	if h.buildCompletes != 1 {
		t.Errorf("buildCompletes = %d, want 1", h.buildCompletes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "document")
	Cache().OnCacheSet(ctx, "document", 2048)
	Cache().OnCacheHit(ctx, "document")

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1 each", h.hits, h.misses, h.sets)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)
	SetCacheHooks(nil)

	Cache().OnCacheHit(context.Background(), "document")
	if h.hits != 1 {
		t.Errorf("hits = %d, want 1 (nil registration must not replace hooks)", h.hits)
	}
}
