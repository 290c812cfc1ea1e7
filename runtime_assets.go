package storygen

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-storygen/pkg/animation"
)

// DefaultAnimationName is the bundled Lottie file inside AnimationFS.
const DefaultAnimationName = "animation_game.json"

//go:embed assets/animation_game.json
var embeddedAnimation embed.FS

// AnimationFS exposes the bundled animation so Go applications can serve it
// without shipping the assets directory.
//
// Typical mount:
//
//	mux.Handle("/animation.json", http.FileServerFS(storygen.AnimationFS()))
func AnimationFS() fs.FS {
	sub, err := fs.Sub(embeddedAnimation, "assets")
	if err != nil {
		return embeddedAnimation
	}
	return sub
}

// DefaultAnimation parses the bundled animation.
func DefaultAnimation() (animation.Animation, error) {
	return animation.LoadFS(AnimationFS(), DefaultAnimationName)
}
