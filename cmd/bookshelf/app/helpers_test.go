package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentstation/bookshelf/pkg/logging"
)

// isolateEnv points HOME and the catalog file at a fresh temp dir and clears
// variables that would leak in from the developer's shell.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("BOOKSHELF_FILE", filepath.Join(dir, "library.json"))
	for _, key := range []string{
		"BOOKSHELF_CATALOG_FORMAT", "BOOKSHELF_MONOTONIC_IDS", "BOOKSHELF_VERBOSE",
		"BOOKSHELF_QUIET", "BOOKSHELF_FORMAT", "BOOKSHELF_NO_COLOR",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "NO_COLOR",
	} {
		t.Setenv(key, "")
	}
	return dir
}

// newTestApp creates an app with buffered streams and a silent logger.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithIO(strings.NewReader(input), &out, &errOut),
		WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app, &out, &errOut
}

// execute runs one command line against app and returns what it printed.
func execute(t *testing.T, app *App, out *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	out.Reset()
	err := app.Execute(context.Background(), args)
	return out.String(), err
}
