// Package constants provides shared constants used throughout the bookshelf codebase.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog defaults
const (
	// DefaultCatalogFile is the backing file used when none is configured
	DefaultCatalogFile = "library.json"

	// JSONIndent is the indentation used when writing JSON catalogs
	JSONIndent = "    "

	// YAMLIndent is the number of spaces used when writing YAML
	YAMLIndent = 2
)

// Application identity
const (
	// AppName is the binary and config file base name
	AppName = "bookshelf"

	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".bookshelf"
)
