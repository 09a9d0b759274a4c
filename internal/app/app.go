// Package app provides the application context for sandbox-ctl.
// It allows dependency injection for testing.
package app

import (
	"io"
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/api"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/create"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/navigate"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Config is the loaded user configuration
	Config *config.Config

	// Service is the sandbox API
	Service create.Service

	// Navigator takes the user to a created sandbox
	Navigator create.Navigator

	// Out receives user-facing output
	Out io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithConfig sets a custom config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithService sets a custom sandbox API
func WithService(svc create.Service) Option {
	return func(a *App) {
		a.Service = svc
	}
}

// WithNavigator sets a custom navigator
func WithNavigator(nav create.Navigator) Option {
	return func(a *App) {
		a.Navigator = nav
	}
}

// WithOutput sets the writer for user-facing output
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// New creates a new App with the given options.
// Service and Navigator default to the HTTP client and a navigator built from
// the config: a Browser when open_command is set, otherwise a Printer.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
		Out:   os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		app.Config = config.DefaultConfig()
	}

	if app.Service == nil {
		app.Service = api.New(api.Config{
			BaseURL: app.Config.APIURL,
			Token:   app.Config.Token,
			Timeout: app.Config.Timeout,
		})
	}

	if app.Navigator == nil {
		app.Navigator = NewNavigator(app.Config, app.Out)
	}

	return app
}

// NewNavigator picks the navigator for a config.
func NewNavigator(cfg *config.Config, out io.Writer) create.Navigator {
	if cfg.OpenCommand != "" {
		return &navigate.Browser{BaseURL: cfg.WebURL, Command: cfg.OpenCommand}
	}
	return &navigate.Printer{BaseURL: cfg.WebURL, Out: out}
}
