package storygen

import (
	"context"
	"io/fs"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-storygen/pkg/page"
)

func TestDefaultAnimationParses(t *testing.T) {
	anim, err := DefaultAnimation()
	if err != nil {
		t.Fatalf("parse bundled animation: %v", err)
	}
	if anim.Width <= 0 || anim.Height <= 0 || anim.Layers == 0 {
		t.Fatalf("unexpected animation metadata: %+v", anim)
	}
}

func TestEmbeddedTemplatesAndAssets(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template missing: %v", err)
	}
	if _, err := fs.Stat(EmbeddedAssets(), "storygen.css"); err != nil {
		t.Fatalf("stylesheet missing: %v", err)
	}
}

func TestGenerateHTML(t *testing.T) {
	values := url.Values{page.FieldPrompt: {"<script>"}}
	html, err := GenerateHTML(context.Background(), values, true, WithTheme("", "dark"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "Model initiated") {
		t.Fatalf("expected status block")
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("prompt must be escaped")
	}
}
