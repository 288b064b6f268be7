// Package scribe is a small personal-blog engine built with Go, Echo, and
// templ. Public visitors read paginated posts and submit a contact form; a
// single administrator signs in with a session cookie to manage posts and
// upload images.
//
// Users provide their own templ components via the ViewFuncs struct, and
// scribe handles the handler logic, middleware, and database operations.
package scribe

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home        func(page Page) templ.Component
	About       func() templ.Component
	Contact     func(form ContactForm, errors map[string]string, flashes []string, csrfToken string) templ.Component
	Post        func(post *Post) templ.Component
	Login       func(csrfToken string) templ.Component
	Dashboard   func(posts []Post, flashes []string, csrfToken string) templ.Component
	Edit        func(post Post, csrfToken string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central scribe application. It wires together the store,
// mailer, handlers, middleware, and user-provided templates.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	mailer    Mailer
	staticDir string
}

// New creates a scribe App with the given configuration and view functions.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, mailer, middleware, and routes, then
// starts the server.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// setup wires everything short of binding the listen address, so tests can
// drive the echo instance directly.
func (a *App) setup() error {
	if a.Config.AdminUser == "" || a.Config.AdminPassword == "" {
		return fmt.Errorf("scribe: AdminUser and AdminPassword are required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("scribe: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabaseURI())
	if err != nil {
		return fmt.Errorf("scribe: init store: %w", err)
	}
	a.Store = store

	if a.mailer == nil && a.Config.MailHost != "" {
		a.mailer = NewSMTPMailer(a.Config)
	}

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public routes
	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/contact", a.handleContact)
	e.POST("/contact", a.handleContactSubmit)
	e.GET("/post/:slug", a.handlePost)

	// Admin routes — session-gated dashboard for managing posts.
	e.GET("/dashboard", a.handleDashboard)
	e.POST("/dashboard", a.handleLogin)
	e.GET("/edit/:id", a.handleEditForm)
	e.POST("/edit/:id", a.handleEditSubmit)
	e.GET("/delete/:id", a.handleDelete)
	e.POST("/uploader", a.handleUpload)
	e.GET("/logout", a.handleLogout)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
