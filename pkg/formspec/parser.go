package formspec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-storygen/pkg/page"
)

const (
	widgetExtensionKey = "x-storygen-widget"
	orderExtensionKey  = "x-storygen-order"
	formIDExtensionKey = "x-storygen-form-id"
)

var (
	// ErrOperationNotFound is returned when the document has no matching operationId.
	ErrOperationNotFound = errors.New("formspec: operation not found")
	// ErrNoRequestBody is returned when the operation declares no form schema.
	ErrNoRequestBody = errors.New("formspec: operation has no request body schema")
)

// Parse loads raw (JSON or YAML OpenAPI 3) and builds the form declared by
// operationID.
func Parse(ctx context.Context, raw []byte, operationID string) (page.Form, error) {
	if err := ctx.Err(); err != nil {
		return page.Form{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return page.Form{}, errors.New("formspec: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return page.Form{}, fmt.Errorf("formspec: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return page.Form{}, fmt.Errorf("formspec: validate: %w", err)
	}

	method, path, operation := findOperation(doc, operationID)
	if operation == nil {
		return page.Form{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return page.Form{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}

	form := page.Form{
		ID:          stringExtension(operation.Extensions, formIDExtensionKey),
		Action:      path,
		Method:      method,
		SubmitLabel: operation.Summary,
		Fields:      buildFields(schema),
	}
	if form.ID == "" {
		form.ID = operationID
	}
	return form, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if doc.Paths == nil {
		return "", "", nil
	}
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return strings.ToUpper(method), path, operation
			}
		}
	}
	return "", "", nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

type orderedField struct {
	field page.Field
	order float64
}

func buildFields(schema *openapi3.Schema) []page.Field {
	ordered := make([]orderedField, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		label := strings.TrimSpace(prop.Title)
		if label == "" {
			label = name
		}
		widget := stringExtension(prop.Extensions, widgetExtensionKey)
		if widget == "" {
			widget = page.WidgetInput
		}
		ordered = append(ordered, orderedField{
			field: page.Field{
				Name:    name,
				Label:   label,
				Help:    strings.TrimSpace(prop.Description),
				Default: defaultString(prop.Default),
				Widget:  widget,
			},
			order: numberExtension(prop.Extensions, orderExtensionKey),
		})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].order != ordered[j].order {
			return ordered[i].order < ordered[j].order
		}
		return ordered[i].field.Name < ordered[j].field.Name
	})

	fields := make([]page.Field, 0, len(ordered))
	for _, entry := range ordered {
		fields = append(fields, entry.field)
	}
	return fields
}

func defaultString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func stringExtension(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	switch v := ext[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.RawMessage:
		var out string
		if err := json.Unmarshal(v, &out); err == nil {
			return strings.TrimSpace(out)
		}
	}
	return ""
}

func numberExtension(ext map[string]any, key string) float64 {
	if len(ext) == 0 {
		return math.MaxFloat64
	}
	switch v := ext[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	case json.RawMessage:
		var out float64
		if err := json.Unmarshal(v, &out); err == nil {
			return out
		}
	}
	return math.MaxFloat64
}
