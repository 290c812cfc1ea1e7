// Package themes resolves go-theme manifests into the renderer configuration
// consumed by the page renderers: design tokens, CSS custom properties, and a
// theme-aware asset resolver.
package themes
