package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-storygen/pkg/render"
)

func TestSanitizeCredits(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		contains []string
		excludes []string
	}{
		{name: "empty", raw: "   "},
		{
			name:     "strips scripts and handlers",
			raw:      `<p onclick="x()">Resources <script>bad()</script><a href="javascript:alert(1)">docs</a></p>`,
			contains: []string{"<p>", "Resources", "docs"},
			excludes: []string{"onclick", "bad()", "javascript:"},
		},
		{
			name:     "keeps links and sized images",
			raw:      `<a href="https://example.com">site</a><img src="https://example.com/logo.png" style="height: 20px">`,
			contains: []string{`href="https://example.com"`, `rel="nofollow`, `target="_blank"`, "<img", "height"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := render.SanitizeCredits(tc.raw)
			if len(tc.contains) == 0 && got != "" {
				t.Fatalf("expected empty output, got %q", got)
			}
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("expected %q in %q", want, got)
				}
			}
			for _, bad := range tc.excludes {
				if strings.Contains(got, bad) {
					t.Fatalf("unexpected %q in %q", bad, got)
				}
			}
		})
	}
}
