// Package storygen renders the Game Story Generator page. It re-exports the
// orchestrator entry points so callers can render without wiring packages.
package storygen

import (
	"context"

	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/themes"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions describes per-request renderer overrides.
type RenderOptions = render.RenderOptions

// Submission is the collected sidebar input.
type Submission = page.Submission

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML runs one render cycle with the HTML renderer. values may be
// nil to use the field defaults.
func GenerateHTML(ctx context.Context, values page.Values, submitted bool, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	out, err := gen.Generate(ctx, orchestrator.Request{
		Values:    values,
		Submitted: submitted,
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// WithThemeSelector passes a theme selector through to the orchestrator.
func WithThemeSelector(selector themes.Selector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithTheme sets the default theme and variant.
func WithTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}
