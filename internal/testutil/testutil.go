// Package testutil provides test utilities for command tests
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/rizzo/internal/app"
	"github.com/firefly-engineering/rizzo/internal/config"
)

// TestEnv holds the test environment: a temporary HOME with a personal
// config and control repositories on disk, wired into app.Default.
type TestEnv struct {
	T              *testing.T
	TmpDir         string
	Home           string
	PersonalConfig string
	App            *app.App
}

// NewTestEnv creates a new test environment. HOME points into a temporary
// directory and RZO_* variables are cleared for the duration of the test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")
	if err := os.MkdirAll(home, 0755); err != nil {
		t.Fatalf("Failed to create home: %v", err)
	}

	t.Setenv("HOME", home)
	for _, key := range []string{"RZO_CONFIG", "RZO_VERBOSE", "RZO_JSON_LOGS", "RZO_OUTPUT", "RZO_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	personal := filepath.Join(home, config.MarkerFile)
	testApp := app.New(
		app.WithPaths(config.NewPaths(personal)),
		app.WithWorkDir(tmpDir),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	return &TestEnv{
		T:              t,
		TmpDir:         tmpDir,
		Home:           home,
		PersonalConfig: personal,
		App:            testApp,
	}
}

// WritePersonalConfig writes a personal config listing the given repos.
func (e *TestEnv) WritePersonalConfig(repos ...string) {
	e.T.Helper()

	data, err := json.MarshalIndent(map[string]any{"control_repos": repos}, "", "  ")
	if err != nil {
		e.T.Fatalf("Failed to marshal personal config: %v", err)
	}
	e.WriteFile(e.PersonalConfig, data)
}

// AddRepo creates a control repository under the temp dir and returns its
// path. A non-nil override is written as the repo's marker file.
func (e *TestEnv) AddRepo(name string, override []byte) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "repos", name)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create repo: %v", err)
	}
	if override != nil {
		e.WriteFile(filepath.Join(path, config.MarkerFile), override)
	}
	return path
}

// AddFixtureRepo creates a control repository whose override is a fixture.
func (e *TestEnv) AddFixtureRepo(name, fixture string) string {
	e.T.Helper()

	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	return e.AddRepo(name, data)
}

// WriteFile writes a file, creating parent directories.
func (e *TestEnv) WriteFile(path string, data []byte) {
	e.T.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", path, err)
	}
}

// Chdir makes dir the directory project detection starts from.
func (e *TestEnv) Chdir(dir string) {
	e.App.WorkDir = dir
}
