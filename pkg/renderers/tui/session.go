package tui

import (
	"context"
	"net/url"
	"strconv"

	"github.com/goliatone/go-storygen/pkg/page"
)

// Result is what an interactive session collected.
type Result struct {
	Submission page.Submission
	Selected   int
}

// Session runs the sidebar form and gallery picker as terminal prompts. It
// feeds the collected values through the page collector, so defaults and
// empty-string handling match the web form.
type Session struct {
	composer    *page.Composer
	driver      PromptDriver
	skipGallery bool
}

// NewSession builds a session over composer. The survey driver is used unless
// WithPromptDriver overrides it.
func NewSession(composer *page.Composer, options ...SessionOption) *Session {
	s := &Session{composer: composer, driver: NewSurveyDriver(nil)}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run prompts for each form field, asks whether to trigger the form action,
// and optionally lets the user pick a gallery image.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.driver == nil {
		return Result{}, ErrNoDriver
	}
	def := s.composer.Definition()

	if def.Banner != "" {
		if err := s.driver.Banner(ctx, def.Banner); err != nil {
			return Result{}, err
		}
	}

	values := url.Values{}
	for _, field := range def.Form.Fields {
		value, err := s.driver.Field(ctx, FieldPrompt{
			Label:   field.Label,
			Help:    field.Help,
			Default: field.Default,
		})
		if err != nil {
			return Result{}, err
		}
		values.Set(field.Name, value)
	}

	submitted, err := s.driver.Submit(ctx, def.Form.SubmitLabel)
	if err != nil {
		return Result{}, err
	}

	selected := page.DefaultSelection
	if !s.skipGallery && len(def.Gallery.Captions) > 0 {
		idx, err := s.driver.Pick(ctx, GalleryPrompt{
			Label:    def.Gallery.Label,
			Captions: def.Gallery.Captions,
			Selected: page.DefaultSelection,
		})
		if err != nil {
			return Result{}, err
		}
		selected = s.composer.Presenter().ResolveSelection(strconv.Itoa(idx))
	}

	return Result{
		Submission: s.composer.Collector().Collect(values, submitted),
		Selected:   selected,
	}, nil
}
