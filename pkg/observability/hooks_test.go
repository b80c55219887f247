package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	parseStarts   int
	renderResults []error
}

func (h *recordingPipelineHooks) OnParseStart(ctx context.Context, source string) {
	h.parseStarts++
}

func (h *recordingPipelineHooks) OnRenderComplete(ctx context.Context, style string, lines int, d time.Duration, err error) {
	h.renderResults = append(h.renderResults, err)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnParseStart(ctx, "a.yaml")
	Pipeline().OnRenderComplete(ctx, "classic", 10, time.Millisecond, nil)
	Catalog().OnCatalogLoad(ctx, "/tmp/catalog", 3, 3)
	Catalog().OnLookupMiss(ctx, "style", "nope")
}

func TestSetPipelineHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnParseStart(ctx, "a.yaml")
	Pipeline().OnParseStart(ctx, "b.yaml")
	Pipeline().OnRenderComplete(ctx, "classic", 5, time.Millisecond, nil)

	if rec.parseStarts != 2 {
		t.Errorf("parseStarts = %d, want 2", rec.parseStarts)
	}
	if len(rec.renderResults) != 1 {
		t.Errorf("renderResults = %d, want 1", len(rec.renderResults))
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	SetPipelineHooks(nil)

	Pipeline().OnParseStart(context.Background(), "a.yaml")
	if rec.parseStarts != 1 {
		t.Errorf("parseStarts = %d, want 1 (nil registration must be ignored)", rec.parseStarts)
	}
}
