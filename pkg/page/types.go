package page

// Field names posted by the sidebar form.
const (
	FieldPrompt         = "prompt"
	FieldNegativePrompt = "negative_prompt"
)

// Widget identifiers understood by renderers.
const (
	WidgetTextarea = "textarea"
	WidgetInput    = "input"
)

// Submission is the output of the input collector for one render cycle.
type Submission struct {
	Submitted      bool   `json:"submitted"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
}

// State reports the render-cycle state derived from the submission.
func (s Submission) State() State {
	if s.Submitted {
		return StateSubmitted
	}
	return StateAwaitingSubmission
}

// State is the two-state page machine. The transition to StateSubmitted is
// one-way within a render cycle and resets on the next page load.
type State string

const (
	StateAwaitingSubmission State = "awaiting_submission"
	StateSubmitted          State = "submitted"
)

// Field describes one sidebar control. Definitions come from the form spec.
type Field struct {
	Name    string `json:"name" yaml:"name"`
	Label   string `json:"label" yaml:"label"`
	Help    string `json:"help,omitempty" yaml:"help,omitempty"`
	Default string `json:"default" yaml:"default"`
	Widget  string `json:"widget" yaml:"widget"`
}

// Form is the bordered sidebar input region.
type Form struct {
	ID          string  `json:"id" yaml:"id"`
	Action      string  `json:"action" yaml:"action"`
	Method      string  `json:"method" yaml:"method"`
	SubmitLabel string  `json:"submitLabel" yaml:"submitLabel"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field returns the field with the supplied name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Gallery is the static image dataset. Images and Captions correspond by
// position: Captions[i] describes Images[i].
type Gallery struct {
	Label    string   `json:"label" yaml:"label"`
	Images   []string `json:"images" yaml:"images"`
	Captions []string `json:"captions" yaml:"captions"`
}

// Status holds the fixed messages shown once the form action fires.
type Status struct {
	Label string   `json:"label" yaml:"label"`
	Lines []string `json:"lines" yaml:"lines"`
}

// Credits is the static resources block rendered under the sidebar divider.
// HTML is sanitised by renderers before output.
type Credits struct {
	Label string `json:"label" yaml:"label"`
	HTML  string `json:"html" yaml:"html"`
}

// Animation configures the decorative widget above the heading.
type Animation struct {
	Key    string `json:"key" yaml:"key"`
	Height int    `json:"height" yaml:"height"`
}

// Definition is the static page content. It is loaded once and never mutated;
// use Clone before handing it to code that may modify it.
type Definition struct {
	Title       string    `json:"title" yaml:"title"`
	Heading     string    `json:"heading" yaml:"heading"`
	Banner      string    `json:"banner" yaml:"banner"`
	RefineLabel string    `json:"refineLabel" yaml:"refineLabel"`
	Form        Form      `json:"form" yaml:"form"`
	Status      Status    `json:"status" yaml:"status"`
	Gallery     Gallery   `json:"gallery" yaml:"gallery"`
	Credits     Credits   `json:"credits" yaml:"credits"`
	Animation   Animation `json:"animation" yaml:"animation"`
}

// Clone returns a deep copy of the definition.
func (d Definition) Clone() Definition {
	out := d
	out.Form.Fields = append([]Field(nil), d.Form.Fields...)
	out.Status.Lines = append([]string(nil), d.Status.Lines...)
	out.Gallery.Images = append([]string(nil), d.Gallery.Images...)
	out.Gallery.Captions = append([]string(nil), d.Gallery.Captions...)
	return out
}

// FieldView is a sidebar control with its value for the current render.
type FieldView struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Help   string `json:"help,omitempty"`
	Value  string `json:"value"`
	Widget string `json:"widget"`
}

// FormView is the sidebar form as rendered in one cycle.
type FormView struct {
	ID          string      `json:"id"`
	Action      string      `json:"action"`
	Method      string      `json:"method"`
	SubmitLabel string      `json:"submitLabel"`
	Banner      string      `json:"banner"`
	RefineLabel string      `json:"refineLabel"`
	Fields      []FieldView `json:"fields"`
}

// StatusView is the progress block. It is nil when the form was not submitted.
type StatusView struct {
	Label    string   `json:"label"`
	Lines    []string `json:"lines"`
	Expanded bool     `json:"expanded"`
}

// GalleryItem pairs an image with its caption.
type GalleryItem struct {
	Index    int    `json:"index"`
	Image    string `json:"image"`
	Caption  string `json:"caption"`
	Selected bool   `json:"selected"`
}

// GalleryView is the single-select image picker.
type GalleryView struct {
	Label    string        `json:"label"`
	Items    []GalleryItem `json:"items"`
	Selected int           `json:"selected"`
}

// View is the output of the presentation controller.
type View struct {
	State   State       `json:"state"`
	Status  *StatusView `json:"status,omitempty"`
	Gallery GalleryView `json:"gallery"`
}

// Page is everything a renderer needs for one render cycle.
type Page struct {
	Title      string     `json:"title"`
	Heading    string     `json:"heading"`
	Animation  Animation  `json:"animation"`
	Form       FormView   `json:"form"`
	Submission Submission `json:"submission"`
	Credits    Credits    `json:"credits"`
	View       View       `json:"view"`
}
