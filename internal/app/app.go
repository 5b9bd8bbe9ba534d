// Package app provides the application context for rzo.
// It allows dependency injection for testing.
package app

import (
	"os"

	"github.com/firefly-engineering/rizzo/internal/config"
	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/logging"
	"github.com/firefly-engineering/rizzo/internal/resolver"
	"github.com/firefly-engineering/rizzo/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// FS is the filesystem configs are read from and output is written to
	FS system.FileSystem

	// WorkDir is where project detection starts. Empty means the process
	// working directory at the time a Resolver is built.
	WorkDir string
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFS sets a custom filesystem
func WithFS(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithWorkDir sets the directory project detection starts from
func WithWorkDir(dir string) Option {
	return func(a *App) {
		a.WorkDir = dir
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
		FS:    system.DefaultFS(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Resolver returns a fresh Resolver for one invocation.
func (a *App) Resolver() *resolver.Resolver {
	return resolver.New(a.FS, a.Paths, a.workDir())
}

// Resolve builds the merged config from the personal config.
func (a *App) Resolve() (document.Document, error) {
	return a.Resolver().Resolve(a.Paths.PersonalConfig)
}

func (a *App) workDir() string {
	if a.WorkDir != "" {
		return a.WorkDir
	}
	wd, err := os.Getwd()
	if err != nil {
		logging.Debug("failed to get working directory", "error", err)
		return "."
	}
	return wd
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
