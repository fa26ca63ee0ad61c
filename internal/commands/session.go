package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/config"
	"github.com/UltraPrikol/wallet/internal/gitops"
	"github.com/UltraPrikol/wallet/internal/ledger"
	"github.com/UltraPrikol/wallet/internal/model"
	"github.com/UltraPrikol/wallet/internal/prompt"
)

type options struct {
	configPath string
}

// session is everything one command invocation works with: the loaded
// configuration, the ledger store, and the terminal.
type session struct {
	cfg    *config.Config
	store  *ledger.Store
	input  *prompt.Prompter
	out    io.Writer
	errOut io.Writer
}

// openSession loads config and the ledger. An explicit file argument wins
// over the configured ledger path; a relative configured path is taken
// relative to the config file that set it.
func openSession(cmd *cobra.Command, opts *options, args []string) (*session, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, err
	}

	path := cfg.Ledger.Path
	if path == "" {
		path = config.DefaultLedgerPath
	}
	if _, err := os.Stat(opts.configPath); err == nil && !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(opts.configPath), path)
	}
	if len(args) > 0 {
		path = args[0]
	}

	store, err := ledger.Load(path)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		store:  store,
		input:  prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	if store.Missing() {
		s.warnf("file not found: %s", path)
	}
	return s, nil
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format+"\n", a...)
}

func (s *session) warnf(format string, a ...any) {
	fmt.Fprintf(s.errOut, "warning: "+format+"\n", a...)
}

// askField prompts for a column name. ok is false when the answer does not
// name a column; the caller reports it and stops.
func (s *session) askField() (field model.Field, ok bool, err error) {
	names := make([]string, 0, 4)
	for _, f := range model.Fields() {
		names = append(names, string(f))
	}
	answer, err := s.input.Line(fmt.Sprintf("Field (%s): ", strings.Join(names, "/")))
	if err != nil {
		return "", false, err
	}
	field, err = model.ParseField(answer)
	if err != nil {
		return "", false, nil
	}
	return field, true, nil
}

// commit records the ledger file in git when auto-commit is enabled and the
// ledger lives in a work tree. Failures are reported, not returned.
func (s *session) commit(message string) {
	if !s.cfg.Git.AutoCommit {
		return
	}
	path, err := filepath.Abs(s.store.Path())
	if err != nil {
		s.warnf("auto-commit skipped: %v", err)
		return
	}
	if !gitops.IsRepo(filepath.Dir(path)) {
		return
	}
	hash, err := gitops.CommitFile(path, message, s.cfg.Git.AuthorName, s.cfg.Git.AuthorEmail)
	if err != nil {
		s.warnf("auto-commit failed: %v", err)
		return
	}
	s.printf("Committed %s (%s)", filepath.Base(path), hash)
}
