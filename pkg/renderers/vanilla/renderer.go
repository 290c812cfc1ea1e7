package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	rendertemplate "github.com/goliatone/go-storygen/pkg/render/template"
	gotemplate "github.com/goliatone/go-storygen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-storygen/pkg/themes"
)

// Name is the registry name of the HTML renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain PageTemplate.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the full HTML document: sidebar form, animation, status
// block, and gallery picker. It needs no client-side script beyond the
// optional animation player.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, p page.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(PageTemplate, map[string]any{
		"view": buildView(p, options),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// templateView flattens the page into strings and booleans so templates
// never format numbers themselves.
type templateView struct {
	Title           string            `json:"title"`
	Heading         string            `json:"heading"`
	ThemeName       string            `json:"themeName"`
	ThemeVariant    string            `json:"themeVariant"`
	CSSVars         map[string]string `json:"cssVars"`
	InlineCSS       string            `json:"inlineCss"`
	StylesheetURL   string            `json:"stylesheetUrl"`
	AnimationURL    string            `json:"animationUrl"`
	AnimationKey    string            `json:"animationKey"`
	AnimationHeight string            `json:"animationHeight"`
	PlayerScriptURL string            `json:"playerScriptUrl"`

	Form    formView             `json:"form"`
	Credits creditsView          `json:"credits"`
	Status  *statusView          `json:"status,omitempty"`
	Gallery galleryView          `json:"gallery"`
	Hidden  []render.HiddenField `json:"hidden"`
}

type formView struct {
	ID          string      `json:"id"`
	Action      string      `json:"action"`
	Method      string      `json:"method"`
	SubmitLabel string      `json:"submitLabel"`
	Banner      string      `json:"banner"`
	RefineLabel string      `json:"refineLabel"`
	Fields      []fieldView `json:"fields"`
}

type fieldView struct {
	ID       string `json:"id"`
	HelpID   string `json:"helpId"`
	Name     string `json:"name"`
	Label    string `json:"label"`
	Help     string `json:"help"`
	Value    string `json:"value"`
	Textarea bool   `json:"textarea"`
}

type creditsView struct {
	Label string `json:"label"`
	HTML  string `json:"html"`
}

type statusView struct {
	Label string   `json:"label"`
	Lines []string `json:"lines"`
	Open  bool     `json:"open"`
}

type galleryView struct {
	Label    string        `json:"label"`
	Action   string        `json:"action"`
	Selected string        `json:"selected"`
	Items    []galleryItem `json:"items"`
}

type galleryItem struct {
	Index    string `json:"index"`
	Number   string `json:"number"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Selected bool   `json:"selected"`
}

func buildView(p page.Page, options render.RenderOptions) templateView {
	view := templateView{
		Title:           p.Title,
		Heading:         p.Heading,
		AnimationURL:    options.AnimationURL,
		AnimationKey:    p.Animation.Key,
		AnimationHeight: itoa(p.Animation.Height),
		PlayerScriptURL: options.PlayerScriptURL,
		StylesheetURL:   options.StylesheetURL,
		Form: formView{
			ID:          p.Form.ID,
			Action:      p.Form.Action,
			Method:      p.Form.Method,
			SubmitLabel: p.Form.SubmitLabel,
			Banner:      p.Form.Banner,
			RefineLabel: p.Form.RefineLabel,
			Fields:      make([]fieldView, 0, len(p.Form.Fields)),
		},
		Credits: creditsView{
			Label: p.Credits.Label,
			HTML:  render.SanitizeCredits(p.Credits.HTML),
		},
		Gallery: galleryView{
			Label:    p.View.Gallery.Label,
			Action:   p.Form.Action,
			Selected: itoa(p.View.Gallery.Selected),
			Items:    make([]galleryItem, 0, len(p.View.Gallery.Items)),
		},
		Hidden: options.Hidden,
	}
	applyTheme(&view, options.Theme)
	if options.InlineStylesheet || view.StylesheetURL == "" {
		view.StylesheetURL = ""
		view.InlineCSS = defaultStylesheet()
	}

	for _, field := range p.Form.Fields {
		view.Form.Fields = append(view.Form.Fields, fieldView{
			ID:       controlID(field.Name),
			HelpID:   helpID(field.Name),
			Name:     field.Name,
			Label:    field.Label,
			Help:     field.Help,
			Value:    field.Value,
			Textarea: field.Widget != page.WidgetInput,
		})
	}

	if p.View.Status != nil {
		view.Status = &statusView{
			Label: p.View.Status.Label,
			Lines: append([]string(nil), p.View.Status.Lines...),
			Open:  p.View.Status.Expanded,
		}
	}

	for _, item := range p.View.Gallery.Items {
		view.Gallery.Items = append(view.Gallery.Items, galleryItem{
			Index:    itoa(item.Index),
			Number:   itoa(item.Index + 1),
			URL:      imageURL(options.AssetPrefix, item.Image),
			Caption:  item.Caption,
			Selected: item.Selected,
		})
	}
	return view
}

func applyTheme(view *templateView, cfg *theme.RendererConfig) {
	if cfg == nil {
		cfg = themes.RendererConfig(themes.DefaultSelection(), nil)
	}
	if cfg == nil {
		return
	}
	view.ThemeName = cfg.Theme
	view.ThemeVariant = cfg.Variant
	view.CSSVars = cfg.CSSVars
	if view.StylesheetURL == "" {
		view.StylesheetURL = themes.StylesheetURL(cfg)
	}
}
