package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	creditsPolicyOnce sync.Once
	creditsPolicy     *bluemonday.Policy
)

// SanitizeCredits keeps the small subset of markup the credits block needs:
// paragraphs, links, emphasis, and inline images with a height style. Every
// renderer that emits credits markup passes it through here first.
func SanitizeCredits(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(creditsSanitizer().Sanitize(trimmed))
}

func creditsSanitizer() *bluemonday.Policy {
	creditsPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("p", "br", "strong", "em", "b", "i", "span", "ul", "li")
		policy.AllowStandardURLs()
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		policy.AllowImages()
		policy.AllowAttrs("style").OnElements("img")
		policy.AllowStyles("height", "width").OnElements("img")
		creditsPolicy = policy
	})
	return creditsPolicy
}
