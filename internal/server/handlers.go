package server

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/page"
	"github.com/goliatone/go-storygen/pkg/render"
)

// Query keys read besides the form fields.
const (
	querySelected = "selected"
	queryVariant  = "variant"
)

type cachedRender struct {
	body        []byte
	contentType string
}

// renderPage runs one render cycle. POST is the form action; every other
// request starts over in the awaiting state.
func (s *Server) renderPage(renderer string, submitted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := requestValues(c, submitted)
		if err != nil {
			badRequest(c, "invalid_form", "request body could not be parsed")
			return
		}

		key := ""
		if !submitted && s.renders != nil && cacheable(values) {
			key = cacheKey(renderer, values)
			if hit, ok := s.renders.Get(key); ok {
				cached := hit.(cachedRender)
				c.Header("X-Render-Cache", "hit")
				c.Data(http.StatusOK, cached.contentType, cached.body)
				return
			}
		}

		req := orchestrator.Request{
			Renderer:     renderer,
			Values:       values,
			Submitted:    submitted,
			Selected:     values.Get(querySelected),
			ThemeVariant: strings.TrimSpace(values.Get(queryVariant)),
		}
		if req.ThemeVariant != "" {
			req.RenderOptions.Hidden = []render.HiddenField{render.Hidden(queryVariant, req.ThemeVariant)}
		}

		out, err := s.orch.Generate(c.Request.Context(), req)
		if err != nil {
			serverError(c, s.logger, err)
			return
		}

		if key != "" && s.renders.ItemCount() < maxCachedRenders {
			s.renders.Set(key, cachedRender{body: out.Body, contentType: out.ContentType}, cache.DefaultExpiration)
		}
		s.logger.Debug("page rendered",
			zap.String("renderer", out.Renderer),
			zap.String("state", string(out.Page.View.State)),
			zap.Int("selected", out.Page.View.Gallery.Selected),
		)
		c.Data(http.StatusOK, out.ContentType, out.Body)
	}
}

func (s *Server) animation(c *gin.Context) {
	if len(s.opts.Animation) == 0 {
		notFound(c, "animation not loaded")
		return
	}
	c.Data(http.StatusOK, "application/json", s.opts.Animation)
}

func requestValues(c *gin.Context, submitted bool) (url.Values, error) {
	if !submitted {
		return c.Request.URL.Query(), nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.Form, nil
}

// cacheable reports whether a GET render is small enough to keep. Prefilled
// prompts are echoed into the body, so large ones would pin large entries.
func cacheable(values url.Values) bool {
	return len(values.Get(page.FieldPrompt))+len(values.Get(page.FieldNegativePrompt)) <= maxCachedPromptBytes
}

// cacheKey hashes the canonical inputs a GET render depends on.
func cacheKey(renderer string, values url.Values) string {
	keep := url.Values{}
	for _, name := range []string{page.FieldPrompt, page.FieldNegativePrompt, querySelected, queryVariant} {
		if values.Has(name) {
			keep.Set(name, values.Get(name))
		}
	}
	sum := sha256.Sum256([]byte(keep.Encode()))
	return renderer + ":" + hex.EncodeToString(sum[:])
}
