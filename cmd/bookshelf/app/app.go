// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging, and the
// catalog store, and wires them into the cobra command tree.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// customLogger keeps a logger set through WithLogger from being rebuilt from flags
	customLogger bool

	// Console streams
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Catalog instance (lazy-initialized, singleton)
	mu      sync.Mutex
	catalog *catalog.Catalog
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the default
// config file; functional options override any of it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		logger := NewLogger(app.config, app.errOut)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Catalog returns the catalog store, loading it from disk on first use.
// A malformed catalog file is returned as an error and is fatal for every command.
func (a *App) Catalog() (*catalog.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	opts, err := a.buildCatalogOptions()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", a.config.File, err)
	}

	a.logger.Debug().
		Str("path", cat.Path()).
		Str("format", cat.Format().String()).
		Int("books", cat.Len()).
		Msg("Catalog ready")

	a.catalog = cat
	return cat, nil
}

// Shutdown performs graceful shutdown of the application. Every mutation is
// already persisted when it happens, so there is nothing left to flush.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		a.logger.Debug().Int("books", a.catalog.Len()).Msg("Shutting down")
	}
	return nil
}

// buildCatalogOptions constructs catalog options from the app configuration.
func (a *App) buildCatalogOptions() ([]catalog.Option, error) {
	format, err := catalog.ParseFormat(a.config.CatalogFormat)
	if err != nil {
		return nil, errors.NewConfigError("catalog", err.Error(), err)
	}

	opts := []catalog.Option{
		catalog.WithPath(a.config.File),
		catalog.WithFormat(format),
		catalog.WithLogger(a.logger),
	}
	if a.config.MonotonicIDs {
		opts = append(opts, catalog.WithMonotonicIDs())
	}
	return opts, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.customLogger = logger != nil
		return nil
	}
}

// WithIO sets the console streams (useful for testing).
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		a.errOut = errOut
		return nil
	}
}

// WithCatalog sets a custom catalog instance (useful for testing).
func WithCatalog(cat *catalog.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}
