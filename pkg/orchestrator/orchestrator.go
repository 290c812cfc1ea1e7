package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/pagedef"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/renderers/jsonview"
	"github.com/goliatone/go-storygen/pkg/renderers/tui"
	"github.com/goliatone/go-storygen/pkg/renderers/vanilla"
	"github.com/goliatone/go-storygen/pkg/themes"
)

const defaultRendererName = vanilla.Name

// Assets holds the URLs renderers link to. Empty values leave the matching
// widget out of the page.
type Assets struct {
	AnimationURL    string
	PlayerScriptURL string
	GalleryPrefix   string
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDefinition renders the supplied page definition instead of loading one.
func WithDefinition(def page.Definition) Option {
	return func(o *Orchestrator) {
		o.composer = page.NewComposer(def)
	}
}

// WithPageOptions controls how the page definition is loaded when no
// definition is supplied directly.
func WithPageOptions(opts pagedef.Options) Option {
	return func(o *Orchestrator) {
		o.pageOptions = opts
	}
}

// WithThemeSelector configures the theme selector used to resolve request
// themes.
func WithThemeSelector(selector themes.Selector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme/variant applied when a request names none.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithAssets sets the asset URLs passed to every renderer.
func WithAssets(assets Assets) Option {
	return func(o *Orchestrator) {
		o.assets = assets
	}
}

// WithTransformer registers a Transformer that runs after composition.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates one render cycle from request values to rendered
// bytes. It applies sensible defaults (embedded page definition, built-in
// renderers, built-in theme) while remaining open to dependency injection.
type Orchestrator struct {
	composer        *page.Composer
	pageOptions     pagedef.Options
	registry        *render.Registry
	defaultRenderer string
	themeSelector   themes.Selector
	themeName       string
	themeVariant    string
	assets          Assets
	transformer     Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render cycle.
type Request struct {
	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// Values holds the request's form/query values. Nil uses field defaults.
	Values page.Values

	// Submitted reports whether the form action triggered this cycle.
	Submitted bool

	// Selected is the raw gallery index. Malformed values select the default.
	Selected string

	// ThemeName and ThemeVariant override the configured default theme.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer overrides. Empty asset URLs
	// fall back to the configured Assets; hidden fields are merged with the
	// submission values.
	RenderOptions render.RenderOptions
}

// Output is the result of Generate.
type Output struct {
	Body        []byte
	ContentType string
	Renderer    string
	Page        page.Page
}

// Generate runs collect → present → theme → render and returns the rendered
// bytes together with the composed page.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Output, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	p := o.Compose(req)
	if err := o.applyTransformer(ctx, &p); err != nil {
		return nil, err
	}

	options, err := o.renderOptions(req, p.Submission)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(ctx, p, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", render.Wrap(renderer.Name(), err))
	}

	return &Output{
		Body:        body,
		ContentType: renderer.ContentType(),
		Renderer:    renderer.Name(),
		Page:        p,
	}, nil
}

// Compose runs the collector and presenter without rendering. It returns the
// zero page when initialisation failed.
func (o *Orchestrator) Compose(req Request) page.Page {
	if o.composer == nil {
		return page.Page{}
	}
	sub := o.composer.Collector().Collect(req.Values, req.Submitted)
	return o.composer.Compose(sub, req.Selected)
}

// Composer exposes the page composer, or nil when initialisation failed.
func (o *Orchestrator) Composer() *page.Composer {
	return o.composer
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Err reports the initialisation error, if any.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

func (o *Orchestrator) renderOptions(req Request, sub page.Submission) (render.RenderOptions, error) {
	options := req.RenderOptions
	if options.AnimationURL == "" {
		options.AnimationURL = o.assets.AnimationURL
	}
	if options.PlayerScriptURL == "" {
		options.PlayerScriptURL = o.assets.PlayerScriptURL
	}
	if options.AssetPrefix == "" {
		options.AssetPrefix = o.assets.GalleryPrefix
	}

	hidden := render.MergeHiddenFields(nil, render.SubmissionFields(sub)...)
	hidden = render.MergeHiddenFields(hidden, options.Hidden...)
	options.Hidden = render.SortedHiddenFields(hidden)

	if options.Theme == nil && o.themeSelector != nil {
		name := req.ThemeName
		if name == "" {
			name = o.themeName
		}
		variant := req.ThemeVariant
		if variant == "" {
			variant = o.themeVariant
		}
		selection, err := o.themeSelector.Select(name, variant)
		if err != nil {
			return render.RenderOptions{}, fmt.Errorf("orchestrator: select theme: %w", err)
		}
		options.Theme = themes.RendererConfig(selection, nil)
	}
	return options, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, p *page.Page) error {
	if o.transformer == nil || p == nil {
		return nil
	}
	before := p.Submission
	if err := o.transformer.Transform(ctx, p); err != nil {
		return fmt.Errorf("orchestrator: transform page: %w", err)
	}
	p.Submission = before
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.composer == nil {
		def, err := pagedef.Load(context.Background(), o.pageOptions)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load page definition: %w", err)
			return
		}
		o.composer = page.NewComposer(def)
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
			return
		}
		o.registry = registry
	}
	if o.themeSelector == nil {
		o.themeSelector = themes.Default()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry returns a registry holding the html, json, and terminal
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, jsonview.New(), tui.New())
}
