package page

// Composer runs one render cycle: collect, present, and assemble the page.
type Composer struct {
	def       Definition
	collector *Collector
	presenter *Presenter
}

// NewComposer wires a collector and presenter over def. The definition is
// cloned so later mutation by the caller has no effect.
func NewComposer(def Definition) *Composer {
	cloned := def.Clone()
	return &Composer{
		def:       cloned,
		collector: NewCollector(cloned.Form),
		presenter: NewPresenter(cloned.Status, cloned.Gallery),
	}
}

// Definition returns a copy of the static page content.
func (c *Composer) Definition() Definition {
	return c.def.Clone()
}

// Collector exposes the input collector.
func (c *Composer) Collector() *Collector {
	return c.collector
}

// Presenter exposes the presentation controller.
func (c *Composer) Presenter() *Presenter {
	return c.presenter
}

// Compose assembles the page for the given submission and raw selection.
func (c *Composer) Compose(sub Submission, rawSelected string) Page {
	selected := c.presenter.ResolveSelection(rawSelected)
	return Page{
		Title:      c.def.Title,
		Heading:    c.def.Heading,
		Animation:  c.def.Animation,
		Form:       c.collector.FormView(c.def, sub),
		Submission: sub,
		Credits:    c.def.Credits,
		View:       c.presenter.Present(sub, selected),
	}
}
