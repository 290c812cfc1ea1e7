// Package page holds the render-cycle model of the story generator page: the
// sidebar form that collects a prompt, the status block shown after the form
// action, and the captioned gallery used for inspiration. Every value here is
// rebuilt on each request; nothing crosses render cycles except the static
// Definition loaded at startup.
package page
