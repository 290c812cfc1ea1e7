package page

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition wraps every definition validation failure.
var ErrInvalidDefinition = errors.New("page: invalid definition")

// Validate checks the structural invariants of a definition: the gallery has
// at least one image and exactly one caption per image, the form declares the
// prompt fields, and the status block has lines to show.
func (d Definition) Validate() error {
	var problems []string

	if len(d.Gallery.Images) == 0 {
		problems = append(problems, "gallery has no images")
	}
	if len(d.Gallery.Images) != len(d.Gallery.Captions) {
		problems = append(problems, fmt.Sprintf("gallery has %d images but %d captions", len(d.Gallery.Images), len(d.Gallery.Captions)))
	}
	for i, image := range d.Gallery.Images {
		if strings.TrimSpace(image) == "" {
			problems = append(problems, fmt.Sprintf("gallery image %d is empty", i))
		}
	}
	for _, name := range []string{FieldPrompt, FieldNegativePrompt} {
		field, ok := d.Form.Field(name)
		if !ok {
			problems = append(problems, fmt.Sprintf("form field %q missing", name))
			continue
		}
		if field.Default == "" {
			problems = append(problems, fmt.Sprintf("form field %q has no default", name))
		}
	}
	if len(d.Status.Lines) == 0 {
		problems = append(problems, "status has no lines")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(problems, "; "))
}
