// Package orchestrator wires the page pipeline: load the page definition,
// collect the request values, present the view, resolve the theme, and hand
// the composed page to a named renderer.
package orchestrator
