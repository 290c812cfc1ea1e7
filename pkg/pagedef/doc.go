// Package pagedef loads the static page definition (headings, status lines,
// gallery dataset, credits) from JSON or YAML and joins it with the form
// fields described by the formspec OpenAPI document.
package pagedef
