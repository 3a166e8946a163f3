package cmd

import (
	"os"

	"github.com/harrison/minigrep/internal/search"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.LookupEnv)
}

// newRootCommand builds the root command with an injectable environment lookup (for testing)
func newRootCommand(lookupEnv search.LookupEnvFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query,
in file order, one per line and without decoration.

Matching is case-sensitive. Set the CASE_SENSITIVE environment variable
(to any value) to match case-insensitively.

Files ending in .gz, .zst or .lz4 are decompressed transparently.

Configuration is loaded from $MINIGREP_HOME/config.yaml if present
(default: <user config dir>/minigrep/config.yaml). CLI flags override
configuration file settings.

Flags must come before the query; everything from the query on is
positional.

Examples:
  minigrep frog poem.txt
  CASE_SENSITIVE=1 minigrep to poem.txt
  minigrep --log-level debug body poem.txt
  minigrep -- -v poem.txt        # query starting with a dash
  minigrep foo -v                # "-v" here is the filename`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, lookupEnv)
		},
		// Errors are printed once by main
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Everything after the query is positional, so a file named "-v" or a
	// trailing "--help" is not taken as a flag.
	cmd.Flags().SetInterspersed(false)

	// Registered by hand so cobra does not add a -v shorthand.
	cmd.Flags().Bool("version", false, "Print the minigrep version")
	cmd.Flags().String("config", "", "Path to config file (default: $MINIGREP_HOME/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic log level on stderr: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Write a per-run log file into this directory")

	return cmd
}
