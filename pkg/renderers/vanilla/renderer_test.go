package vanilla

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
	"github.com/goliatone/go-storygen/pkg/testsupport"
	"github.com/goliatone/go-storygen/pkg/themes"
)

func newComposer(t *testing.T) *page.Composer {
	t.Helper()
	return page.NewComposer(testsupport.MustLoadDefinition(t))
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func renderPage(t *testing.T, p page.Page, opts render.RenderOptions) string {
	t.Helper()
	out, err := newRenderer(t).Render(testsupport.Context(), p, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_DefaultsWithoutSubmission(t *testing.T) {
	composer := newComposer(t)
	p := composer.Compose(composer.Collector().Defaults(), "")
	html := renderPage(t, p, render.RenderOptions{})

	if strings.Contains(html, "sg-status") {
		t.Fatalf("expected no status block before submission")
	}
	if got := strings.Count(html, `class="sg-gallery-item`); got != 6 {
		t.Fatalf("expected 6 gallery items, got %d", got)
	}
	if got := strings.Count(html, `class="sg-caption"`); got != 6 {
		t.Fatalf("expected 6 captions, got %d", got)
	}
	for _, want := range []string{
		"<title>Game Story Generator</title>",
		"In a post-apocalyptic world, players must survive and rebuild civilization.",
		"Avoid cliches and predictable plot twists.",
		"Specify any elements you want to exclude from the story.",
		">Generate Story</button>",
		`value="0" class="sg-gallery-item is-selected"`,
		"--heading-from: purple;",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestRenderer_SubmittedShowsStatusInOrder(t *testing.T) {
	composer := newComposer(t)
	sub := composer.Collector().Collect(url.Values{page.FieldPrompt: {""}, page.FieldNegativePrompt: {""}}, true)
	html := renderPage(t, composer.Compose(sub, ""), render.RenderOptions{})

	first := strings.Index(html, "Model initiated")
	second := strings.Index(html, "Let your imagination run wild!")
	if first < 0 || second < 0 {
		t.Fatalf("expected both status lines")
	}
	if first > second {
		t.Fatalf("status lines out of order")
	}
	if got := strings.Count(html, `class="sg-status-line"`); got != 2 {
		t.Fatalf("expected exactly 2 status lines, got %d", got)
	}
	if got := strings.Count(html, `class="sg-gallery-item`); got != 6 {
		t.Fatalf("expected gallery unchanged after submission, got %d items", got)
	}
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	composer := newComposer(t)
	sub := composer.Collector().Collect(url.Values{page.FieldPrompt: {`<script>alert("x")</script>`}}, true)
	p := composer.Compose(sub, "")
	html := renderPage(t, p, render.RenderOptions{Hidden: render.SubmissionFields(sub)})

	if strings.Contains(html, `<script>alert`) {
		t.Fatalf("user input rendered unescaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped prompt in output")
	}
	if !strings.Contains(html, `type="hidden" name="prompt"`) {
		t.Fatalf("expected hidden prompt field in gallery picker")
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	composer := newComposer(t)
	p := composer.Compose(composer.Collector().Defaults(), "3")
	renderer := newRenderer(t)

	first, err := renderer.Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := renderer.Render(context.Background(), p, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("render output differs between identical calls")
	}
}

func TestRenderer_ThemeAndAssets(t *testing.T) {
	composer := newComposer(t)
	p := composer.Compose(composer.Collector().Defaults(), "")

	selection, err := themes.Default().Select("", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	html := renderPage(t, p, render.RenderOptions{
		Theme:           themes.RendererConfig(selection, nil),
		AnimationURL:    "/animation.json",
		PlayerScriptURL: "/player.js",
		AssetPrefix:     "/static",
	})

	for _, want := range []string{
		`data-theme-variant="dark"`,
		"--background: #0e1117;",
		`<link rel="stylesheet" href="/assets/storygen.css">`,
		`src="/animation.json"`,
		`style="height: 300px"`,
		`<script src="/player.js" defer></script>`,
		`src="/static/gallery/1.jpeg"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestRenderer_InlineStylesheetAndNoAnimation(t *testing.T) {
	composer := newComposer(t)
	p := composer.Compose(composer.Collector().Defaults(), "")
	html := renderPage(t, p, render.RenderOptions{InlineStylesheet: true})

	if strings.Contains(html, `<link rel="stylesheet"`) {
		t.Fatalf("expected stylesheet to be inlined")
	}
	if !strings.Contains(html, ".sg-rainbow") {
		t.Fatalf("expected embedded stylesheet contents")
	}
	if strings.Contains(html, "<lottie-player") {
		t.Fatalf("expected no animation widget without an animation url")
	}
}

func TestRenderer_CreditsSanitised(t *testing.T) {
	composer := newComposer(t)
	def := composer.Definition()
	def.Credits.HTML = `<p onclick="x()">Made with <a href="javascript:alert(1)">love</a></p><script>bad()</script>`
	p := page.NewComposer(def).Compose(page.Submission{}, "")
	html := renderPage(t, p, render.RenderOptions{})

	if strings.Contains(html, "bad()") || strings.Contains(html, "onclick") || strings.Contains(html, "javascript:") {
		t.Fatalf("credits markup not sanitised")
	}
	if !strings.Contains(html, "Made with") {
		t.Fatalf("expected credits text kept")
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		PageTemplate: {Data: []byte(`{{ view.heading }}|{% for item in view.gallery.items %}{{ item.index }}{% endfor %}`)},
	}
	renderer, err := New(WithTemplatesFS(fsys))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	composer := newComposer(t)
	out, err := renderer.Render(context.Background(), composer.Compose(page.Submission{}, ""), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Game Story Generator|012345" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	composer := newComposer(t)
	if _, err := newRenderer(t).Render(ctx, composer.Compose(page.Submission{}, ""), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}

func TestImageURL(t *testing.T) {
	cases := []struct{ prefix, image, want string }{
		{"", "gallery/1.jpeg", "/gallery/1.jpeg"},
		{"/static", "gallery/1.jpeg", "/static/gallery/1.jpeg"},
		{"static/", "gallery/1.jpeg", "/static/gallery/1.jpeg"},
		{"/static", "/abs.png", "/abs.png"},
		{"/static", "https://cdn/x.png", "https://cdn/x.png"},
		{"/static", " ", ""},
	}
	for _, tc := range cases {
		if got := imageURL(tc.prefix, tc.image); got != tc.want {
			t.Fatalf("imageURL(%q, %q) = %q, want %q", tc.prefix, tc.image, got, tc.want)
		}
	}
}
