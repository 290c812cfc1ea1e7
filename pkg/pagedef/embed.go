package pagedef

import (
	"embed"
	"io/fs"
)

//go:embed ui/*
var embeddedDefinition embed.FS

// EmbeddedFS returns the bundled page definition. Callers may pass this
// filesystem to LoadFS to use the default content.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefinition, "ui")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
