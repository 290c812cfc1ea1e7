// Package animation loads the decorative Lottie animation bundled with the
// page. The asset is read once at startup; a missing or malformed file is
// fatal to serving the page.
package animation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrMissing is returned when the animation file cannot be read.
	ErrMissing = errors.New("animation: asset missing")
	// ErrMalformed is returned when the file is not a Lottie JSON document.
	ErrMalformed = errors.New("animation: asset malformed")
)

// Animation is a loaded Lottie definition. Raw holds the compacted JSON that
// is served to the browser player.
type Animation struct {
	Version   string  `json:"v"`
	Name      string  `json:"nm,omitempty"`
	FrameRate float64 `json:"fr"`
	InPoint   float64 `json:"ip"`
	OutPoint  float64 `json:"op"`
	Width     int     `json:"w"`
	Height    int     `json:"h"`
	Layers    int     `json:"-"`

	Raw []byte `json:"-"`
}

// Duration returns the animation length in seconds, or zero when the frame
// rate is unknown.
func (a Animation) Duration() float64 {
	if a.FrameRate <= 0 {
		return 0
	}
	return (a.OutPoint - a.InPoint) / a.FrameRate
}

// Load reads and parses the animation at path.
func Load(path string) (Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Animation{}, fmt.Errorf("%w: %s: %v", ErrMissing, path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses the animation at name inside fsys.
func LoadFS(fsys fs.FS, name string) (Animation, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Animation{}, fmt.Errorf("%w: %s: %v", ErrMissing, name, err)
	}
	return Parse(data, name)
}

// Parse validates data as a Lottie document: a JSON object carrying a version,
// a frame rate, dimensions, and a layers array.
func Parse(data []byte, source string) (Animation, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Animation{}, fmt.Errorf("%w: %s is empty", ErrMalformed, source)
	}

	var envelope struct {
		Animation
		RawLayers []json.RawMessage `json:"layers"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return Animation{}, fmt.Errorf("%w: %s: %v", ErrMalformed, source, err)
	}
	if envelope.RawLayers == nil {
		return Animation{}, fmt.Errorf("%w: %s has no layers", ErrMalformed, source)
	}
	if envelope.Width <= 0 || envelope.Height <= 0 {
		return Animation{}, fmt.Errorf("%w: %s has invalid dimensions %dx%d", ErrMalformed, source, envelope.Width, envelope.Height)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return Animation{}, fmt.Errorf("%w: %s: %v", ErrMalformed, source, err)
	}

	anim := envelope.Animation
	anim.Layers = len(envelope.RawLayers)
	anim.Raw = compact.Bytes()
	return anim, nil
}
