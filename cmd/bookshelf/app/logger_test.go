package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestDetermineLogLevel verifies log level precedence rules.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		warning string
	}{
		{
			name:   "default",
			config: Config{},
			want:   "info",
		},
		{
			name:   "env",
			config: Config{EnvLogLevel: "error"},
			want:   "error",
		},
		{
			name:   "verbose beats env",
			config: Config{Verbose: true, EnvLogLevel: "error"},
			want:   "debug",
		},
		{
			name:   "quiet",
			config: Config{Quiet: true},
			want:   "warn",
		},
		{
			name:    "verbose and quiet",
			config:  Config{Verbose: true, Quiet: true},
			want:    "warn",
			warning: "both --verbose and --quiet",
		},
		{
			name:   "explicit flag wins",
			config: Config{LogLevel: "trace", Quiet: true, EnvLogLevel: "error"},
			want:   "trace",
		},
		{
			name:    "invalid flag",
			config:  Config{LogLevel: "loud"},
			want:    "info",
			warning: `invalid log level "loud"`,
		},
		{
			name:   "invalid env",
			config: Config{EnvLogLevel: "loud"},
			want:   "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			got := determineLogLevel(&tt.config, &warnings)
			if got != tt.want {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.want)
			}
			if tt.warning == "" && warnings.Len() > 0 {
				t.Errorf("unexpected warning: %s", warnings.String())
			}
			if tt.warning != "" && !strings.Contains(warnings.String(), tt.warning) {
				t.Errorf("warning = %q, want it to contain %q", warnings.String(), tt.warning)
			}
		})
	}
}

// TestNewLogger verifies the logger level follows the config.
func TestNewLogger(t *testing.T) {
	original := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(original) })

	var warnings bytes.Buffer
	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"}, &warnings)

	if got := logger.GetLevel().String(); got != "warn" {
		t.Errorf("logger level = %s, want warn", got)
	}
}
