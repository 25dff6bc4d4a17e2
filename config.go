package cleanblog

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SiteConfig holds all configuration for a cleanblog site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:5003")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr         string // Listen address (default ":5003")
	DatabasePath string // SQLite path (default "data/posts.db")
	StaticDir    string // Static asset directory served under /static (default "static")

	SessionSecret string // Required: flash-message cookie secret
	CookieSecure  bool   // Set true for HTTPS

	SubmitLimit  int           // Form submissions allowed per IP per window (default 30)
	SubmitWindow time.Duration // Submission limiter window (default 1min)

	LogLevel  string // debug, info, warn, error (default "info")
	LogFormat string // "json" or "console" (default "json")

	ShutdownTimeout time.Duration // Graceful shutdown budget (default 10s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:5003"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":5003"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/posts.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.SubmitLimit <= 0 {
		c.SubmitLimit = 30
	}
	if c.SubmitWindow <= 0 {
		c.SubmitWindow = time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// WithDefaults returns a copy of c with unset fields filled in.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

// ConfigFromEnv builds a SiteConfig from environment variables.
// Unset variables fall back to the defaults applied by New.
func ConfigFromEnv() SiteConfig {
	return SiteConfig{
		Name:            os.Getenv("SITE_NAME"),
		URL:             os.Getenv("SITE_URL"),
		Description:     os.Getenv("SITE_DESCRIPTION"),
		Author:          os.Getenv("SITE_AUTHOR"),
		Addr:            os.Getenv("ADDR"),
		DatabasePath:    os.Getenv("DATABASE_PATH"),
		StaticDir:       os.Getenv("STATIC_DIR"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		CookieSecure:    envBool("COOKIE_SECURE", false),
		SubmitLimit:     envInt("SUBMIT_LIMIT", 0),
		SubmitWindow:    envDuration("SUBMIT_WINDOW", 0),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 0),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides SiteConfig.StaticDir.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the logger built from LogLevel and LogFormat.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Log = l
		a.customLogger = true
	}
}

// WithClock sets the time source used to stamp new posts.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
