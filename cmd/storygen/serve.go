package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-storygen/internal/server"
	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/renderers/vanilla"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page over HTTP",
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVarP(&flagCfg.ListenAddr, "listen", "l", flagCfg.ListenAddr, "listen address")
	flags.StringVar(&flagCfg.GalleryDir, "gallery-dir", flagCfg.GalleryDir, "directory served under /gallery")
	flags.Float64Var(&flagCfg.RateLimit, "rate-limit", flagCfg.RateLimit, "page requests per second (0 disables)")
	flags.IntVar(&flagCfg.RateBurst, "rate-burst", flagCfg.RateBurst, "rate limiter burst")
	flags.DurationVar(&flagCfg.CacheTTL, "cache-ttl", flagCfg.CacheTTL, "GET render cache TTL (0 disables)")
	flags.StringVar(&flagCfg.PlayerScriptURL, "player-url", flagCfg.PlayerScriptURL, "lottie player script URL")
}

func runServe(cmd *cobra.Command, args []string) error {
	anim, err := loadAnimation()
	if err != nil {
		logger.Error("startup asset unavailable", zap.String("path", cfg.AnimationPath), zap.Error(err))
		return err
	}

	orch, err := newOrchestrator(orchestrator.Assets{
		AnimationURL:    server.PathAnimation,
		PlayerScriptURL: cfg.PlayerScriptURL,
	})
	if err != nil {
		return err
	}

	if !strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}
	srv, err := server.New(orch, logger, server.Options{
		Animation:       anim.Raw,
		GalleryDir:      cfg.GalleryDir,
		AssetsFS:        vanilla.AssetsFS(),
		RateLimit:       cfg.RateLimit,
		RateBurst:       cfg.RateBurst,
		CacheTTL:        cfg.CacheTTL,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, cfg.ListenAddr)
}
