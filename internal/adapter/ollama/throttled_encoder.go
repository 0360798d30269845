package ollama

import (
	"context"

	"golang.org/x/time/rate"

	"lexorigin/internal/domain"
)

// ThrottledEncoder rate-limits calls to a wrapped encoder. Bulk ingestion
// uses it to avoid saturating the embedding endpoint that live queries
// depend on.
type ThrottledEncoder struct {
	inner   domain.VectorEncoder
	limiter *rate.Limiter
}

// NewThrottledEncoder allows at most callsPerSecond Encode calls per second.
func NewThrottledEncoder(inner domain.VectorEncoder, callsPerSecond float64) *ThrottledEncoder {
	return &ThrottledEncoder{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(callsPerSecond), 1),
	}
}

func (t *ThrottledEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.inner.Encode(ctx, texts)
}

func (t *ThrottledEncoder) Version() string {
	return t.inner.Version()
}

var _ domain.VectorEncoder = (*ThrottledEncoder)(nil)
