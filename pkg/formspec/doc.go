// Package formspec reads the sidebar form definition from an OpenAPI document.
// The request body schema of the form operation lists one property per field;
// titles become labels, descriptions become help text, defaults become the
// pre-populated values, and the `x-storygen-widget` / `x-storygen-order`
// extensions pick the control and its position.
package formspec
