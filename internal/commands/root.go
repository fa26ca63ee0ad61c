package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/config"
)

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "wallet",
		Short:   "Personal income and expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to wallet.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newBalanceCommand(opts),
		newAddRecordCommand(opts),
		newEditRecordCommand(opts),
		newSearchRecordCommand(opts),
	)

	return rootCmd
}
