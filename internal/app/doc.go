// Package app provides the application context for rzo.
//
// The App struct holds the dependencies every command needs to resolve a
// config, set up with functional options:
//
//	a := app.New(
//	    app.WithPaths(config.NewPaths("/srv/me/.rizzo.json")),
//	    app.WithFS(system.NewMockFS()),
//	    app.WithWorkDir("/src/control"),
//	)
//	doc, err := a.Resolve()
//
// Commands use app.Default; tests swap it with SetDefault and restore it
// with ResetDefault.
package app
