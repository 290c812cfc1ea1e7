package jsonview

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/testsupport"
	"github.com/goliatone/go-storygen/pkg/themes"
)

func TestRenderer_RoundTripsPage(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	p := composer.Compose(page.Submission{Submitted: true, Prompt: "", NegativePrompt: ""}, "4")
	options := render.RenderOptions{
		AnimationURL: "/animation.json",
		Hidden:       render.SubmissionFields(p.Submission),
	}

	out, err := New().Render(context.Background(), p, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := p
	want.Credits.HTML = render.SanitizeCredits(p.Credits.HTML)
	if diff := cmp.Diff(want, doc.Page); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
	if doc.Assets.Animation != "/animation.json" {
		t.Fatalf("expected animation url, got %q", doc.Assets.Animation)
	}
	if len(doc.Hidden) != 2 {
		t.Fatalf("expected 2 hidden fields, got %v", doc.Hidden)
	}
}

func TestRenderer_OmitsStatusBeforeSubmit(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	p := composer.Compose(composer.Collector().Defaults(), "")

	out, err := New(WithIndent("")).Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var raw struct {
		Page struct {
			View map[string]json.RawMessage `json:"view"`
		} `json:"page"`
	}
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw.Page.View["status"]; ok {
		t.Fatalf("status must be omitted before submit: %s", out)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	p := composer.Compose(page.Submission{Submitted: true, Prompt: "x"}, "1")
	r := New()

	first, err := r.Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := r.Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}

func TestRenderer_SanitisesCredits(t *testing.T) {
	def := testsupport.MustLoadDefinition(t)
	def.Credits.HTML = `<p onclick="x()">Made with <a href="javascript:alert(1)">love</a></p><script>bad()</script>`
	p := page.NewComposer(def).Compose(page.Submission{}, "")

	out, err := New().Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	html := doc.Page.Credits.HTML
	if strings.Contains(html, "bad()") || strings.Contains(html, "onclick") || strings.Contains(html, "javascript:") {
		t.Fatalf("credits not sanitised: %s", html)
	}
	if !strings.Contains(html, "Made with") {
		t.Fatalf("credits text lost: %s", html)
	}
}

func TestRenderer_StylesheetFromTheme(t *testing.T) {
	composer := page.NewComposer(testsupport.MustLoadDefinition(t))
	p := composer.Compose(composer.Collector().Defaults(), "")

	selection, err := themes.Default().Select("", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cases := []struct {
		name    string
		options render.RenderOptions
		want    string
	}{
		{name: "default theme", want: "/assets/storygen.css"},
		{name: "selected theme", options: render.RenderOptions{Theme: themes.RendererConfig(selection, nil)}, want: "/assets/storygen.css"},
		{name: "explicit override", options: render.RenderOptions{StylesheetURL: "/custom.css"}, want: "/custom.css"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := New().Render(context.Background(), p, tc.options)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			var doc Document
			if err := json.Unmarshal(out, &doc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if doc.Assets.Stylesheet != tc.want {
				t.Fatalf("expected stylesheet %q, got %q", tc.want, doc.Assets.Stylesheet)
			}
		})
	}
}
