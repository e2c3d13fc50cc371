package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// envPrefix namespaces bookshelf environment variables (BOOKSHELF_FILE, ...).
const envPrefix = "BOOKSHELF"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	File          string
	CatalogFormat string
	MonotonicIDs  bool

	// Logging configuration. LogLevel is only set by --log-level;
	// EnvLogLevel comes from LOG_LEVEL and ranks below -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables
// 3. .env files
// 4. Config file (explicit path, or .bookshelf.yaml in $HOME or the working directory)
// 5. Defaults
//
// A missing default config file is not an error; an explicit one that
// cannot be read is.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("file", constants.DefaultCatalogFile)
	v.SetDefault("catalog_format", "auto")
	v.SetDefault("monotonic_ids", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:          v.GetString("file"),
		CatalogFormat: v.GetString("catalog_format"),
		MonotonicIDs:  v.GetBool("monotonic_ids"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// flagValues carries the persistent flags of the root command.
type flagValues struct {
	configFile   string
	file         string
	verbose      bool
	quiet        bool
	noColor      bool
	format       string
	logLevel     string
	monotonicIDs bool
}

// UpdateFromFlags copies the flags the user actually set, so flag values take
// precedence over config file and env vars without clobbering them with defaults.
func (c *Config) UpdateFromFlags(f flagValues, changed func(name string) bool) {
	if changed("file") {
		c.File = f.file
	}
	if changed("verbose") {
		c.Verbose = f.verbose
	}
	if changed("quiet") {
		c.Quiet = f.quiet
	}
	if changed("no-color") {
		c.NoColor = f.noColor
	}
	if changed("format") {
		c.Format = f.format
	}
	if changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if changed("monotonic-ids") {
		c.MonotonicIDs = f.monotonicIDs
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment win over file values.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
