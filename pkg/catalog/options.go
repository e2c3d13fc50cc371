package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Format is the encoding of the backing file.
type Format int

// Format constants.
const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatAuto, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("invalid catalog format %q: must be one of: auto, json, yaml", s)
	}
}

// formatForPath infers the format from the file extension.
func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// options holds catalog configuration.
type options struct {
	path         string
	format       Format
	logger       *zerolog.Logger
	monotonicIDs bool
}

func defaultOptions() *options {
	return &options{
		path:   constants.DefaultCatalogFile,
		format: FormatAuto,
		logger: logging.Default(),
	}
}

// Option configures a Catalog.
type Option func(*options)

// WithPath sets the backing file.
func WithPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
		}
	}
}

// WithFormat forces the file encoding instead of inferring it from the extension.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMonotonicIDs assigns new ids as one past the highest existing id,
// so an id freed by a deletion is never handed out again while a record
// with a higher id survives.
func WithMonotonicIDs() Option {
	return func(o *options) {
		o.monotonicIDs = true
	}
}
