package formspec

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storygen/pkg/page"
)

func TestParse_DefaultDocument(t *testing.T) {
	form, err := Parse(context.Background(), DefaultDocument(), DefaultOperationID)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := page.Form{
		ID:          "my_form",
		Action:      "/",
		Method:      "POST",
		SubmitLabel: "Generate Story",
		Fields: []page.Field{
			{
				Name:    page.FieldPrompt,
				Label:   "Enter your game idea or concept:",
				Default: "In a post-apocalyptic world, players must survive and rebuild civilization.",
				Widget:  page.WidgetTextarea,
			},
			{
				Name:    page.FieldNegativePrompt,
				Label:   "Elements you don't want in the game story?",
				Help:    "Specify any elements you want to exclude from the story.",
				Default: "Avoid cliches and predictable plot twists.",
				Widget:  page.WidgetTextarea,
			},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_UnknownOperation(t *testing.T) {
	_, err := Parse(context.Background(), DefaultDocument(), "missing")
	if !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	if _, err := Parse(context.Background(), []byte("  "), DefaultOperationID); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestParse_FieldsWithoutOrderSortByName(t *testing.T) {
	doc := []byte(`{
  "openapi": "3.0.3",
  "info": {"title": "t", "version": "1"},
  "paths": {
    "/submit": {
      "post": {
        "operationId": "submit",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "zeta": {"type": "string"},
                  "alpha": {"type": "string", "default": "a"}
                }
              }
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`)
	form, err := Parse(context.Background(), doc, "submit")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if form.ID != "submit" {
		t.Fatalf("expected form id to fall back to operation id, got %q", form.ID)
	}
	if form.Action != "/submit" || form.Method != "POST" {
		t.Fatalf("unexpected action/method: %s %s", form.Method, form.Action)
	}
	got := []string{form.Fields[0].Name, form.Fields[1].Name}
	if diff := cmp.Diff([]string{"alpha", "zeta"}, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if form.Fields[0].Widget != page.WidgetInput {
		t.Fatalf("expected input widget fallback, got %q", form.Fields[0].Widget)
	}
	if form.Fields[0].Default != "a" {
		t.Fatalf("expected default a, got %q", form.Fields[0].Default)
	}
}

func TestParse_NoRequestBody(t *testing.T) {
	doc := []byte(`{
  "openapi": "3.0.3",
  "info": {"title": "t", "version": "1"},
  "paths": {"/": {"get": {"operationId": "page", "responses": {"200": {"description": "ok"}}}}}
}`)
	_, err := Parse(context.Background(), doc, "page")
	if !errors.Is(err, ErrNoRequestBody) {
		t.Fatalf("expected ErrNoRequestBody, got %v", err)
	}
}
