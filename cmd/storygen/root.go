package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-storygen/internal/config"
	"github.com/goliatone/go-storygen/internal/logging"
	"github.com/goliatone/go-storygen/pkg/animation"
	"github.com/goliatone/go-storygen/pkg/orchestrator"
	"github.com/goliatone/go-storygen/pkg/pagedef"
	"github.com/goliatone/go-storygen/pkg/themes"
)

var (
	// Global flags
	configPath string
	verbose    bool
	flagCfg    = config.Default()

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storygen",
	Short: "Game Story Generator page",
	Long: `storygen serves the Game Story Generator page: a sidebar form for a
game idea, a decorative animation, and a gallery of game genres.

Use "serve" for the web page, "render" to write a single render, and
"prompt" to fill the form from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		if verbose {
			loaded.LogLevel = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&flagCfg.AnimationPath, "animation", flagCfg.AnimationPath, "Lottie animation JSON file")
	flags.StringVar(&flagCfg.PageDir, "page-dir", "", "directory holding a page definition (embedded when empty)")
	flags.StringVar(&flagCfg.Theme, "theme", "", "theme name")
	flags.StringVar(&flagCfg.Variant, "variant", "", "theme variant")
	flags.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level")
	flags.StringVar(&flagCfg.LogFormat, "log-format", flagCfg.LogFormat, "log format (json|console)")

	rootCmd.AddCommand(serveCmd, renderCmd, promptCmd)
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cmd *cobra.Command, dst *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("animation") {
		dst.AnimationPath = flagCfg.AnimationPath
	}
	if changed("page-dir") {
		dst.PageDir = flagCfg.PageDir
	}
	if changed("theme") {
		dst.Theme = flagCfg.Theme
	}
	if changed("variant") {
		dst.Variant = flagCfg.Variant
	}
	if changed("log-level") {
		dst.LogLevel = flagCfg.LogLevel
	}
	if changed("log-format") {
		dst.LogFormat = flagCfg.LogFormat
	}
	if changed("listen") {
		dst.ListenAddr = flagCfg.ListenAddr
	}
	if changed("gallery-dir") {
		dst.GalleryDir = flagCfg.GalleryDir
	}
	if changed("rate-limit") {
		dst.RateLimit = flagCfg.RateLimit
	}
	if changed("rate-burst") {
		dst.RateBurst = flagCfg.RateBurst
	}
	if changed("cache-ttl") {
		dst.CacheTTL = flagCfg.CacheTTL
	}
	if changed("player-url") {
		dst.PlayerScriptURL = flagCfg.PlayerScriptURL
	}
}

// loadAnimation reads the startup asset. Failure is fatal for every command
// that renders the page.
func loadAnimation() (animation.Animation, error) {
	anim, err := animation.Load(cfg.AnimationPath)
	if err != nil {
		return animation.Animation{}, err
	}
	logger.Debug("animation loaded",
		zap.String("path", cfg.AnimationPath),
		zap.Int("layers", anim.Layers),
		zap.Float64("duration_seconds", anim.Duration()),
	)
	return anim, nil
}

func newOrchestrator(assets orchestrator.Assets) (*orchestrator.Orchestrator, error) {
	catalog := themes.Default()
	if _, err := catalog.Select(cfg.Theme, cfg.Variant); err != nil {
		return nil, err
	}
	opts := []orchestrator.Option{
		orchestrator.WithThemeSelector(catalog),
		orchestrator.WithAssets(assets),
		orchestrator.WithDefaultTheme(cfg.Theme, cfg.Variant),
	}
	if cfg.PageDir != "" {
		opts = append(opts, orchestrator.WithPageOptions(pagedef.Options{PageFS: os.DirFS(cfg.PageDir)}))
	}
	orch := orchestrator.New(opts...)
	if err := orch.Err(); err != nil {
		return nil, err
	}
	return orch, nil
}

func dataURL(anim animation.Animation) string {
	return "data:application/json;base64," + base64.StdEncoding.EncodeToString(anim.Raw)
}
