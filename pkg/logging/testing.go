package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Recorder is a trace-level JSON logger whose output stays in memory so
// catalog tests can check which events were logged.
type Recorder struct {
	Logger *zerolog.Logger
	buf    bytes.Buffer
}

// NewRecorder returns a Recorder and lifts the global level to trace until
// the test ends.
func NewRecorder(t testing.TB) *Recorder {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	r := &Recorder{}
	logger := zerolog.New(&r.buf).Level(zerolog.TraceLevel)
	r.Logger = &logger
	return r
}

// Lines returns one JSON entry per element.
func (r *Recorder) Lines() []string {
	out := strings.TrimSpace(r.buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// AssertLogged fails t unless some entry contains substr.
func (r *Recorder) AssertLogged(t testing.TB, substr string) {
	t.Helper()
	if !strings.Contains(r.buf.String(), substr) {
		t.Errorf("no log entry contains %q\nlog:\n%s", substr, r.buf.String())
	}
}

// NewNopLogger returns a logger that drops everything; stores and menus
// built in tests use it to keep test output quiet.
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
