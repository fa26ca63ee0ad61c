package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/config"
	"github.com/UltraPrikol/wallet/internal/gitops"
	"github.com/UltraPrikol/wallet/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var currency string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create wallet.yaml and an empty ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, currency, !noGit)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 code used to display totals")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not create a git repository or enable auto-commit")

	return cmd
}

func runInit(out io.Writer, dir, currency string, useGit bool) error {
	if currency != "" && money.GetCurrency(strings.ToUpper(currency)) == nil {
		return fmt.Errorf("unknown currency %q", currency)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Write wallet.yaml.
	cfg := config.Default()
	cfg.Display.Currency = strings.ToUpper(currency)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write a header-only ledger unless one is already there.
	ledgerPath := filepath.Join(dir, cfg.Ledger.Path)
	created := false
	if _, err := os.Stat(ledgerPath); errors.Is(err, fs.ErrNotExist) {
		if err := ledger.New(ledgerPath).PersistRewrite(); err != nil {
			return fmt.Errorf("writing ledger: %w", err)
		}
		created = true
	} else if err != nil {
		return fmt.Errorf("checking ledger: %w", err)
	} else {
		fmt.Fprintf(out, "Keeping existing ledger %s\n", ledgerPath)
	}

	if useGit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return err
			}
		}
		if created {
			hash, err := gitops.CommitFile(ledgerPath, "wallet: init ledger", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
			if err != nil {
				return fmt.Errorf("initial commit: %w", err)
			}
			fmt.Fprintf(out, "Committed %s (%s)\n", filepath.Base(ledgerPath), hash)
		}
	}

	fmt.Fprintf(out, "Initialized wallet at %s\n", dir)
	return nil
}
