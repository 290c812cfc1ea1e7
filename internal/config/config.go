// Package config holds the runtime settings for the storygen commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultListenAddr      = ":8501"
	DefaultGalleryDir      = "gallery"
	DefaultAnimationPath   = "assets/animation_game.json"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultRateLimit       = 20.0
	DefaultRateBurst       = 40
	DefaultCacheTTL        = 5 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPlayerScriptURL = "https://unpkg.com/@lottiefiles/lottie-player@latest/dist/lottie-player.js"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid")

// Config is the merged result of defaults, an optional YAML file, and flags.
type Config struct {
	ListenAddr      string        `yaml:"listen"`
	GalleryDir      string        `yaml:"galleryDir"`
	AnimationPath   string        `yaml:"animationPath"`
	PageDir         string        `yaml:"pageDir"`
	Theme           string        `yaml:"theme"`
	Variant         string        `yaml:"variant"`
	LogLevel        string        `yaml:"logLevel"`
	LogFormat       string        `yaml:"logFormat"`
	RateLimit       float64       `yaml:"rateLimit"`
	RateBurst       int           `yaml:"rateBurst"`
	CacheTTL        time.Duration `yaml:"cacheTTL"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	PlayerScriptURL string        `yaml:"playerScriptURL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:      DefaultListenAddr,
		GalleryDir:      DefaultGalleryDir,
		AnimationPath:   DefaultAnimationPath,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		RateLimit:       DefaultRateLimit,
		RateBurst:       DefaultRateBurst,
		CacheTTL:        DefaultCacheTTL,
		ShutdownTimeout: DefaultShutdownTimeout,
		PlayerScriptURL: DefaultPlayerScriptURL,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals YAML into cfg, keeping fields the document omits and
// rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return cfg.Validate()
}

// Validate checks the values that would otherwise fail at first use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.AnimationPath) == "" {
		return fmt.Errorf("%w: animation path is empty", ErrInvalid)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalid)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("%w: rate burst must be at least 1", ErrInvalid)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache ttl must not be negative", ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console", "":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}
