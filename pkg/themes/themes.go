package themes

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Default theme identifiers.
const (
	DefaultTheme   = "storygen"
	DefaultVariant = "light"
)

// Token names read by the page templates.
const (
	TokenHeadingFrom = "heading-from"
	TokenHeadingTo   = "heading-to"
	TokenAccent      = "accent"
	TokenLabel       = "label"
	TokenBackground  = "background"
	TokenSurface     = "surface"
	TokenText        = "text"
)

// Asset keys resolved through RendererConfig.AssetURL.
const (
	AssetStylesheet = "stylesheet"
)

// ErrUnknownTheme is returned when a selection names an unregistered theme.
var ErrUnknownTheme = errors.New("themes: unknown theme")

// Selector is the go-theme selector contract consumed by the orchestrator.
type Selector = theme.ThemeSelector

// Catalog selects among registered manifests through a go-theme Selector.
// Unlike the bare Selector, naming an unregistered theme is an error rather
// than a silent fallback to the default.
type Catalog struct {
	registry *theme.MemoryRegistry
	selector theme.Selector
}

var _ Selector = (*Catalog)(nil)

// NewCatalog registers manifests and records the defaults used when Select
// receives empty names.
func NewCatalog(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*Catalog, error) {
	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("themes: register %q: %w", manifest.Name, err)
		}
	}

	defaultTheme = strings.TrimSpace(defaultTheme)
	if defaultTheme == "" {
		defaultTheme = DefaultTheme
	}
	if _, err := registry.Theme(defaultTheme); err != nil {
		return nil, fmt.Errorf("%w: default %q: %w", ErrUnknownTheme, defaultTheme, err)
	}

	return &Catalog{
		registry: registry,
		selector: theme.Selector{
			Registry:       registry,
			DefaultTheme:   defaultTheme,
			DefaultVariant: strings.TrimSpace(defaultVariant),
		},
	}, nil
}

// Default returns a catalog holding only the built-in manifest.
func Default() *Catalog {
	c, err := NewCatalog(DefaultTheme, DefaultVariant, DefaultManifest())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultSelection selects the built-in manifest and default variant.
func DefaultSelection() *theme.Selection {
	return &theme.Selection{
		Theme:    DefaultTheme,
		Variant:  DefaultVariant,
		Manifest: DefaultManifest(),
	}
}

// Provider exposes the go-theme registry backing the catalog.
func (c *Catalog) Provider() theme.ThemeProvider {
	return c.registry
}

// Names lists the registered theme names in order.
func (c *Catalog) Names() []string {
	var out []string
	for _, ref := range c.registry.Themes() {
		if len(out) > 0 && out[len(out)-1] == ref.Name {
			continue
		}
		out = append(out, ref.Name)
	}
	return out
}

// Select resolves name/variant, falling back to the catalog defaults for
// empty values. An unknown variant keeps the base manifest values.
func (c *Catalog) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name != "" {
		if _, err := c.registry.Theme(name, opts...); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownTheme, name, err)
		}
	}
	return c.selector.Select(name, strings.TrimSpace(variant), opts...)
}

// RendererConfig resolves a selection into the partials, tokens, --name CSS
// variables, and asset resolver handed to renderers.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	cfg := selection.RendererTheme(fallbacks)
	return &cfg
}

// StylesheetURL resolves the stylesheet asset from cfg, using the built-in
// manifest when cfg is nil.
func StylesheetURL(cfg *theme.RendererConfig) string {
	if cfg == nil {
		cfg = RendererConfig(DefaultSelection(), nil)
	}
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return cfg.AssetURL(AssetStylesheet)
}

// DefaultManifest is the built-in look: a purple-to-blue heading gradient,
// an orange field label, and a red primary action.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenHeadingFrom: "purple",
			TokenHeadingTo:   "blue",
			TokenAccent:      "#ff4b4b",
			TokenLabel:       "#ffa421",
			TokenBackground:  "#ffffff",
			TokenSurface:     "#f0f2f6",
			TokenText:        "#31333f",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				AssetStylesheet: "storygen.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenBackground: "#0e1117",
					TokenSurface:    "#262730",
					TokenText:       "#fafafa",
				},
			},
		},
	}
}
