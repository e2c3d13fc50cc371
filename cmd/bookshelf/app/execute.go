package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/menu"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Execute runs the bookshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var flags flagValues

	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Personal book catalog",
		Version: a.version,
		Long: `Bookshelf keeps a small catalog of books in a local JSON or YAML file.

Run it without a command to open the interactive menu, or use the
commands below to add, delete, search, list and update books from scripts.
Every change is written to the catalog file immediately.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupCommand(cmd, flags)
		},
		RunE:          a.runMenu,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "books",
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "other",
		Title: "Other Commands:",
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is $HOME/.bookshelf.yaml)")
	pf.StringVarP(&flags.file, "file", "f", "", "catalog file (default is ./library.json)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.StringVarP(&flags.format, "format", "o", "", "output format: table, json, yaml, text, markdown")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.BoolVar(&flags.monotonicIDs, "monotonic-ids", false, "assign new ids after the highest existing id")

	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, flags flagValues) error {
	changed := cmd.Flags().Changed

	if changed("config") {
		config, err := LoadConfig(flags.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(flags, changed)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.NewValidationError("format", a.config.Format, err.Error())
	}

	if !a.customLogger {
		logger := NewLogger(a.config, a.errOut)
		a.logger = &logger
		logging.SetDefault(logger)
	}

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("config_file", a.config.ConfigFile).
		Str("catalog_file", a.config.File).
		Msg("Command starting")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(a.CreateAddCommand())
	rootCmd.AddCommand(a.CreateDeleteCommand())
	rootCmd.AddCommand(a.CreateSearchCommand())
	rootCmd.AddCommand(a.CreateListCommand())
	rootCmd.AddCommand(a.CreateStatusCommand())

	// Other commands
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// runMenu starts the interactive menu on the command's streams.
func (a *App) runMenu(cmd *cobra.Command, _ []string) error {
	cat, err := a.Catalog()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	ctx = logging.WithOperation(ctx, "menu")
	ctx = logging.WithCatalogPath(ctx, cat.Path())

	m := menu.New(cat, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithLogger(logging.FromContext(ctx)),
		menu.WithAlertWriter(a.AlertWriter(cmd.OutOrStdout(), output.FormatText)),
	)
	return m.Run(ctx)
}

// AlertWriter builds an alert writer honoring --no-color.
func (a *App) AlertWriter(w io.Writer, format output.Format) alerts.Writer {
	fw := alerts.NewFormatWriter(w, format)
	if a.config.NoColor {
		fw.WithConfig(alerts.WriterConfig{ShowDetails: true, UseColor: false})
	}
	return fw
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
