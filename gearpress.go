// Package gearpress is a small blog content-management engine built with Go,
// Echo, and templ: a public listing page with search, and a session-gated
// admin dashboard for creating, editing, and deleting posts backed by SQLite.
package gearpress

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central gearpress application. It wires together the store,
// feed cache, auth, handlers, and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *FeedCache
	Auth   *Authenticator

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new gearpress App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, seeds the admin account, sets up
// middleware and routes, and starts the server. It blocks until the server
// stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init performs all startup work short of binding the listener. Split out
// so tests can build a fully wired App without a running server.
func (a *App) init() error {
	if a.Config.AdminEmail == "" || a.Config.AdminPassword == "" {
		return fmt.Errorf("gearpress: AdminEmail and AdminPassword are required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("gearpress: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("gearpress: init store: %w", err)
	}
	a.Store = store

	a.Auth = NewAuthenticator(store)
	if err := a.Auth.SeedAccount(a.Config.AdminEmail, a.Config.AdminPassword); err != nil {
		return fmt.Errorf("gearpress: seed admin account: %w", err)
	}

	a.Cache = NewFeedCache(store, a.Config.FeedCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Engine assets shipped via embed: stylesheet plus the dashboard and
	// feed scripts (transient banner dismissal, delete confirmation,
	// client-side title search).
	registerEmbeddedAssets(e)

	// User's static assets, including uploaded images.
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/", a.handleHome)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)

	// Admin routes — session-gated dashboard for managing posts.
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", a.handleAdminLogout)
	e.GET("/admin/post/:id/", a.handleAdminEdit)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/delete/:id/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.POST("/admin/images/delete/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
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

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("gearpress: required environment variable %s is not set", key)
	}
	return v
}
