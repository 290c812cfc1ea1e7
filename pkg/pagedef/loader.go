package pagedef

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-storygen/pkg/formspec"
	"github.com/goliatone/go-storygen/pkg/page"
)

// ErrNotFound is returned when a filesystem holds no definition file.
var ErrNotFound = errors.New("pagedef: no page definition found")

// Options controls Load.
type Options struct {
	// PageFS holds the page definition. Defaults to EmbeddedFS.
	PageFS fs.FS
	// FormDocument is the raw OpenAPI document describing the form. Defaults
	// to formspec.DefaultDocument.
	FormDocument []byte
	// OperationID selects the form operation. Defaults to
	// formspec.DefaultOperationID.
	OperationID string
}

// Load reads the page definition, resolves the form fields from the OpenAPI
// document, and validates the result.
func Load(ctx context.Context, opts Options) (page.Definition, error) {
	fsys := opts.PageFS
	if fsys == nil {
		fsys = EmbeddedFS()
	}
	def, err := LoadFS(fsys)
	if err != nil {
		return page.Definition{}, err
	}

	raw := opts.FormDocument
	if len(raw) == 0 {
		raw = formspec.DefaultDocument()
	}
	opID := strings.TrimSpace(opts.OperationID)
	if opID == "" {
		opID = formspec.DefaultOperationID
	}
	form, err := formspec.Parse(ctx, raw, opID)
	if err != nil {
		return page.Definition{}, err
	}
	def.Form = mergeForm(def.Form, form)

	if err := def.Validate(); err != nil {
		return page.Definition{}, err
	}
	return def, nil
}

// LoadFS parses the first JSON/YAML file found in fsys (lexical order) into
// a definition. Form fields declared in the file are kept; Load replaces them
// with the formspec fields.
func LoadFS(fsys fs.FS) (page.Definition, error) {
	if fsys == nil {
		return page.Definition{}, ErrNotFound
	}

	var candidates []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return page.Definition{}, fmt.Errorf("pagedef: walk: %w", err)
	}
	if len(candidates) == 0 {
		return page.Definition{}, ErrNotFound
	}
	sort.Strings(candidates)

	path := candidates[0]
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return page.Definition{}, fmt.Errorf("pagedef: read %s: %w", path, err)
	}
	return parseDefinition(data, path)
}

func parseDefinition(data []byte, source string) (page.Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return page.Definition{}, fmt.Errorf("pagedef: file %s is empty", source)
	}

	var def page.Definition
	if err := json.Unmarshal(data, &def); err == nil {
		return normalise(def), nil
	}

	def = page.Definition{}
	if err := yaml.Unmarshal(data, &def); err == nil {
		return normalise(def), nil
	}

	return page.Definition{}, fmt.Errorf("pagedef: parse %s: invalid JSON or YAML", source)
}

func normalise(def page.Definition) page.Definition {
	def.Title = strings.TrimSpace(def.Title)
	def.Heading = strings.TrimSpace(def.Heading)
	if def.Heading == "" {
		def.Heading = def.Title
	}
	def.Gallery.Label = strings.TrimSpace(def.Gallery.Label)
	for i, image := range def.Gallery.Images {
		def.Gallery.Images[i] = strings.TrimSpace(image)
	}
	if def.Animation.Height <= 0 {
		def.Animation.Height = 300
	}
	return def
}

// mergeForm keeps the file's form chrome when set and takes fields from spec.
func mergeForm(file, spec page.Form) page.Form {
	out := spec
	if file.ID != "" {
		out.ID = file.ID
	}
	if file.Action != "" {
		out.Action = file.Action
	}
	if file.Method != "" {
		out.Method = strings.ToUpper(file.Method)
	}
	if file.SubmitLabel != "" {
		out.SubmitLabel = file.SubmitLabel
	}
	if len(out.Fields) == 0 {
		out.Fields = append([]page.Field(nil), file.Fields...)
	}
	return out
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
