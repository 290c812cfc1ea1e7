package storygen

import (
	"io/fs"

	"github.com/goliatone/go-storygen/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the built-in stylesheet.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
