package ollama

import (
	"context"
	"testing"
	"time"
)

type countingEncoder struct {
	calls int
}

func (c *countingEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	c.calls++
	return make([][]float32, len(texts)), nil
}

func (c *countingEncoder) Version() string { return "counting" }

func TestThrottledEncoder_DelegatesToInner(t *testing.T) {
	inner := &countingEncoder{}
	throttled := NewThrottledEncoder(inner, 100)

	vectors, err := throttled.Encode(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
	if throttled.Version() != "counting" {
		t.Fatalf("unexpected version: %s", throttled.Version())
	}
}

func TestThrottledEncoder_CancelledContextStopsWaiting(t *testing.T) {
	inner := &countingEncoder{}
	throttled := NewThrottledEncoder(inner, 0.001)

	// First call consumes the single burst token.
	if _, err := throttled.Encode(context.Background(), []string{"a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := throttled.Encode(ctx, []string{"b"}); err == nil {
		t.Fatal("expected error when waiting past the context deadline")
	}
	if inner.calls != 1 {
		t.Fatalf("inner must not be called after cancelled wait, got %d calls", inner.calls)
	}
}
