// Package jsonview renders a composed page as a JSON document for API clients.
package jsonview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/themes"
)

// Name is the registry name of the JSON renderer.
const Name = "json"

// Document is the payload written by Render.
type Document struct {
	Page   page.Page            `json:"page"`
	Hidden []render.HiddenField `json:"hidden,omitempty"`
	Assets Assets               `json:"assets"`
}

// Assets lists the URLs a client needs to reproduce the HTML page.
type Assets struct {
	Animation  string `json:"animation,omitempty"`
	Player     string `json:"player,omitempty"`
	Stylesheet string `json:"stylesheet,omitempty"`
	Gallery    string `json:"gallery,omitempty"`
}

// Renderer serialises pages as indented JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent sets the indentation string. An empty string produces compact
// output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs a JSON renderer with two-space indentation.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
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
	return "application/json; charset=utf-8"
}

// Render encodes the page together with the hidden fields and asset URLs
// from options. Credits markup is sanitised the same way the HTML renderer
// does it, and the stylesheet falls back to the theme asset.
func (r *Renderer) Render(ctx context.Context, p page.Page, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("jsonview: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.Credits.HTML = render.SanitizeCredits(p.Credits.HTML)
	stylesheet := options.StylesheetURL
	if stylesheet == "" {
		stylesheet = themes.StylesheetURL(options.Theme)
	}

	doc := Document{
		Page:   p,
		Hidden: options.Hidden,
		Assets: Assets{
			Animation:  options.AnimationURL,
			Player:     options.PlayerScriptURL,
			Stylesheet: stylesheet,
			Gallery:    options.AssetPrefix,
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("jsonview: encode page: %w", err)
	}
	return buf.Bytes(), nil
}
