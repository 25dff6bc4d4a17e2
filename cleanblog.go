// Package cleanblog is a small blog publishing app built with Go, Echo, and templ.
// It stores posts in a single SQLite table and serves list, view, create,
// edit, and delete pages plus a couple of static pages.
//
// Callers provide the page components through ViewFuncs; cleanblog owns the
// handlers, middleware, and database.
package cleanblog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ViewFuncs holds the templ components the handlers render. This is the
// boundary to the rendering layer: handlers pass typed data in and write
// whatever markup comes back.
type ViewFuncs struct {
	Home        func(posts []BlogPost, flash string) templ.Component
	Post        func(post BlogPost, flash string) templ.Component
	PostForm    func(form PostForm, errs FieldErrors, edit bool, csrfToken string) templ.Component
	About       func() templ.Component
	Contact     func() templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central cleanblog application. It wires together the store,
// handlers, middleware, and the rendering layer.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs
	Log    zerolog.Logger

	submitLimiter *SubmitLimiter
	customRoutes  []func(*App)
	customLogger  bool
	now           func() time.Time
}

// New creates a cleanblog App with the given configuration and views.
// Nothing is opened until Init or Start is called.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Views:  views,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	if !a.customLogger {
		a.Log = NewLogger(a.Config.LogLevel, a.Config.LogFormat)
	}
	return a
}

// Init opens the database and registers middleware and routes. Start calls it;
// tests call it directly and drive a.Echo with httptest.
func (a *App) Init() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("cleanblog: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("cleanblog: init store: %w", err)
	}
	a.Store = store

	count, err := store.CountPosts(context.Background())
	if err != nil {
		return fmt.Errorf("cleanblog: init store: %w", err)
	}
	a.Log.Info().
		Str("path", a.Config.DatabasePath).
		Int("posts", count).
		Msg("database ready")

	a.submitLimiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and blocks serving HTTP on Config.Addr.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	return a.serve()
}

// Run initializes the app, serves until ctx is cancelled, then shuts the
// server down within Config.ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("cleanblog: shutdown: %w", err)
	}
	return <-errCh
}

func (a *App) serve() error {
	a.Log.Info().Str("addr", a.Config.Addr).Msg("listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/static", a.Config.StaticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/post/:id", a.handlePost)
	e.POST("/post/:id", a.handlePost)

	e.GET("/new-post", a.handleNewPost)
	e.POST("/new-post", a.handleNewPost, a.limitSubmissions)
	e.GET("/edit-post/:id", a.handleEditPost)
	e.POST("/edit-post/:id", a.handleEditPost, a.limitSubmissions)
	e.GET("/delete/:id", a.handleDeletePost)

	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.submitLimiter != nil {
		a.submitLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
