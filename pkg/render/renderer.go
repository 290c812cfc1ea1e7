package render

import (
	"context"

	"github.com/goliatone/go-storygen/pkg/page"
)

// Renderer converts a composed Page into a byte representation (HTML, JSON,
// terminal text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, p page.Page, options RenderOptions) ([]byte, error)
}
