package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
)

// Name is the registry name of the terminal text renderer.
const Name = "tui"

// Renderer writes a plain-text rendition of the page for terminals.
type Renderer struct {
	theme Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the heading, the status block when the form was submitted,
// and the numbered gallery.
func (r *Renderer) Render(ctx context.Context, p page.Page, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s\n", r.theme.HeadingPrefix, p.Heading)

	if status := p.View.Status; status != nil {
		fmt.Fprintf(&buf, "\n%s\n", status.Label)
		for _, line := range status.Lines {
			fmt.Fprintf(&buf, "%s%s\n", r.theme.StatusPrefix, line)
		}
	}

	gallery := p.View.Gallery
	if label := strings.TrimSpace(gallery.Label); label != "" {
		fmt.Fprintf(&buf, "\n%s\n", label)
	}
	for _, item := range gallery.Items {
		marker := r.theme.ItemMarker
		if item.Selected {
			marker = r.theme.SelectedMarker
		}
		fmt.Fprintf(&buf, "%s %d. %s (%s)\n", marker, item.Index+1, item.Caption, item.Image)
	}
	return buf.Bytes(), nil
}
