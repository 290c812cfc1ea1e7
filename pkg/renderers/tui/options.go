package tui

// Theme captures message prefixes applied to text output.
type Theme struct {
	HeadingPrefix  string
	StatusPrefix   string
	SelectedMarker string
	ItemMarker     string
}

// DefaultTheme mirrors the page's decorative icons in plain text.
func DefaultTheme() Theme {
	return Theme{
		HeadingPrefix:  "# ",
		StatusPrefix:   "  - ",
		SelectedMarker: "[x]",
		ItemMarker:     "[ ]",
	}
}

// Option configures the text renderer.
type Option func(*Renderer)

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// SessionOption configures an interactive Session.
type SessionOption func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) SessionOption {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithSkipGallery disables the gallery selection prompt.
func WithSkipGallery(skip bool) SessionOption {
	return func(s *Session) {
		s.skipGallery = skip
	}
}
