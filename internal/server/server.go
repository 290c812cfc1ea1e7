// Package server exposes the story generator page over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-storygen/pkg/orchestrator"
)

// Route paths.
const (
	PathIndex     = "/"
	PathAPIPage   = "/api/page"
	PathAnimation = "/animation.json"
	PathAssets    = "/assets"
	PathGallery   = "/gallery"
	PathHealth    = "/healthz"
)

// Render cache and request header bounds.
const (
	maxCachedRenders     = 1024
	maxCachedPromptBytes = 4 << 10
	maxHeaderBytes       = 64 << 10
)

// Options configures the server.
type Options struct {
	// Animation is served verbatim at PathAnimation.
	Animation []byte
	// GalleryDir is served under PathGallery. Empty disables the route.
	GalleryDir string
	// AssetsFS is served under PathAssets.
	AssetsFS fs.FS
	// RateLimit is the sustained requests per second for page routes. Zero
	// disables limiting.
	RateLimit float64
	RateBurst int
	// CacheTTL caches GET renders. Zero disables caching.
	CacheTTL        time.Duration
	ShutdownTimeout time.Duration
}

// Server is the HTTP front end over an orchestrator.
type Server struct {
	router   *gin.Engine
	orch     *orchestrator.Orchestrator
	logger   *zap.Logger
	opts     Options
	limiter  *rate.Limiter
	renders  *cache.Cache
	shutdown time.Duration
}

// New builds the server and registers its routes.
func New(orch *orchestrator.Orchestrator, logger *zap.Logger, opts Options) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	if err := orch.Err(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:   gin.New(),
		orch:     orch,
		logger:   logger,
		opts:     opts,
		shutdown: opts.ShutdownTimeout,
	}
	if s.shutdown <= 0 {
		s.shutdown = 10 * time.Second
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	if opts.CacheTTL > 0 {
		s.renders = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	s.router.Use(requestID(), accessLog(logger), gin.Recovery())
	s.registerRoutes()
	return s, nil
}

// Engine returns the gin engine.
func (s *Server) Engine() *gin.Engine { return s.router }

// Run listens on addr and serves until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errCh
}
