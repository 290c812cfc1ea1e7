package formspec

import (
	"embed"
	"io/fs"
)

//go:embed spec/*.yaml
var embeddedSpec embed.FS

// DefaultDocumentName is the bundled OpenAPI document describing the form.
const DefaultDocumentName = "storygen.openapi.yaml"

// DefaultOperationID is the operation whose request body defines the form.
const DefaultOperationID = "generateStory"

// EmbeddedFS returns the bundled OpenAPI documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSpec, "spec")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultDocument returns the raw bytes of the bundled form document.
func DefaultDocument() []byte {
	data, err := fs.ReadFile(EmbeddedFS(), DefaultDocumentName)
	if err != nil {
		panic(err)
	}
	return data
}
