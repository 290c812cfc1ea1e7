package page

import (
	"strconv"
	"strings"
)

// DefaultSelection is the gallery index selected when the request names none.
const DefaultSelection = 0

// Presenter is the presentation controller: it decides whether the status
// block shows and lays out the gallery.
type Presenter struct {
	status  Status
	gallery Gallery
}

// NewPresenter builds a presenter over the static status and gallery content.
func NewPresenter(status Status, gallery Gallery) *Presenter {
	return &Presenter{status: status, gallery: gallery}
}

// Present builds the main-area view. The status block is present exactly when
// sub.Submitted is true; the gallery is always present. The returned view's
// Gallery.Selected is the resolved selection.
func (p *Presenter) Present(sub Submission, selected int) View {
	view := View{
		State:   sub.State(),
		Gallery: p.galleryView(selected),
	}
	if sub.Submitted {
		view.Status = &StatusView{
			Label:    p.status.Label,
			Lines:    append([]string(nil), p.status.Lines...),
			Expanded: true,
		}
	}
	return view
}

// Len reports the number of gallery entries.
func (p *Presenter) Len() int {
	return len(p.gallery.Images)
}

// ResolveSelection parses a raw selection index. Empty, malformed, or
// out-of-range values resolve to DefaultSelection.
func (p *Presenter) ResolveSelection(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultSelection
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return DefaultSelection
	}
	return p.clamp(idx)
}

func (p *Presenter) clamp(idx int) int {
	if idx < 0 || idx >= p.Len() {
		return DefaultSelection
	}
	return idx
}

func (p *Presenter) galleryView(selected int) GalleryView {
	selected = p.clamp(selected)
	items := make([]GalleryItem, 0, len(p.gallery.Images))
	for i, image := range p.gallery.Images {
		caption := ""
		if i < len(p.gallery.Captions) {
			caption = p.gallery.Captions[i]
		}
		items = append(items, GalleryItem{
			Index:    i,
			Image:    image,
			Caption:  caption,
			Selected: i == selected,
		})
	}
	return GalleryView{
		Label:    p.gallery.Label,
		Items:    items,
		Selected: selected,
	}
}
