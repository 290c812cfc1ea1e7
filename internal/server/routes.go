package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-storygen/pkg/renderers/jsonview"
)

func (s *Server) registerRoutes() {
	pages := s.router.Group("", s.rateLimit())
	pages.GET(PathIndex, s.renderPage("", false))
	pages.POST(PathIndex, s.renderPage("", true))
	pages.GET(PathAPIPage, s.renderPage(jsonview.Name, false))
	pages.POST(PathAPIPage, s.renderPage(jsonview.Name, true))

	s.router.GET(PathAnimation, s.animation)
	s.router.GET(PathHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.opts.AssetsFS != nil {
		s.router.StaticFS(PathAssets, http.FS(s.opts.AssetsFS))
	}
	if s.opts.GalleryDir != "" {
		s.router.Static(PathGallery, s.opts.GalleryDir)
	}
}
