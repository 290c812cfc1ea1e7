package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the composed page.
type RenderOptions struct {
	// Theme carries resolved tokens, CSS variables, and the asset resolver for
	// the selected theme/variant. Nil renders with built-in defaults.
	Theme *theme.RendererConfig
	// AnimationURL is where the browser fetches the animation definition.
	// Empty omits the animation widget.
	AnimationURL string
	// PlayerScriptURL points at the animation player bundle.
	PlayerScriptURL string
	// StylesheetURL overrides the stylesheet link resolved from the theme.
	StylesheetURL string
	// InlineStylesheet embeds the stylesheet in the document instead of
	// linking it. Used for standalone output.
	InlineStylesheet bool
	// AssetPrefix is prepended to relative gallery image paths.
	AssetPrefix string
	// Hidden fields are emitted inside the gallery picker so that selecting an
	// image keeps the sidebar values.
	Hidden []HiddenField
}
