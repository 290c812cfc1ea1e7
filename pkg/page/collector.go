package page

import "strings"

// Values is the read side of a request's form data. url.Values satisfies it.
type Values interface {
	Has(key string) bool
	Get(key string) string
}

// Collector turns request values into a Submission. Fields missing from the
// request fall back to their definition default; fields present but empty
// stay empty. No validation is performed.
type Collector struct {
	form Form
}

// NewCollector builds a collector for the supplied sidebar form.
func NewCollector(form Form) *Collector {
	return &Collector{form: form}
}

// Collect reads the prompt fields from values. submitted reports whether the
// form action triggered this render cycle.
func (c *Collector) Collect(values Values, submitted bool) Submission {
	return Submission{
		Submitted:      submitted,
		Prompt:         c.value(values, FieldPrompt),
		NegativePrompt: c.value(values, FieldNegativePrompt),
	}
}

// Defaults returns the submission produced when the user has not edited any
// field and has not triggered the form action.
func (c *Collector) Defaults() Submission {
	return c.Collect(nil, false)
}

// FormView renders the form definition with the values from sub.
func (c *Collector) FormView(def Definition, sub Submission) FormView {
	view := FormView{
		ID:          c.form.ID,
		Action:      c.form.Action,
		Method:      strings.ToUpper(strings.TrimSpace(c.form.Method)),
		SubmitLabel: c.form.SubmitLabel,
		Banner:      def.Banner,
		RefineLabel: def.RefineLabel,
		Fields:      make([]FieldView, 0, len(c.form.Fields)),
	}
	if view.Method == "" {
		view.Method = "POST"
	}
	for _, field := range c.form.Fields {
		value := field.Default
		switch field.Name {
		case FieldPrompt:
			value = sub.Prompt
		case FieldNegativePrompt:
			value = sub.NegativePrompt
		}
		widget := field.Widget
		if widget == "" {
			widget = WidgetTextarea
		}
		view.Fields = append(view.Fields, FieldView{
			Name:   field.Name,
			Label:  field.Label,
			Help:   field.Help,
			Value:  value,
			Widget: widget,
		})
	}
	return view
}

func (c *Collector) value(values Values, name string) string {
	if values != nil && values.Has(name) {
		return values.Get(name)
	}
	if field, ok := c.form.Field(name); ok {
		return field.Default
	}
	return ""
}
