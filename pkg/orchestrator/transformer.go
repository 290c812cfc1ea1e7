package orchestrator

import (
	"context"

	"github.com/goliatone/go-storygen/pkg/page"
)

// Transformer mutates a composed page before rendering. Implementations can
// relabel chrome or inject content; they must not change the submission.
type Transformer interface {
	Transform(ctx context.Context, p *page.Page) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, p *page.Page) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, p *page.Page) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, p)
}
