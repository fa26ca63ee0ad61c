package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/ledger"
)

func newEditRecordCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit-record [file]",
		Short: "Change one field of an existing record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			return runEditRecord(s)
		},
	}
}

func runEditRecord(s *session) error {
	index, err := s.input.Int("Record index: ")
	if err != nil {
		return err
	}
	rec, err := s.store.At(index)
	if errors.Is(err, ledger.ErrInvalidIndex) {
		s.printf("Invalid index.")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Current record: %s", rec)

	field, ok, err := s.askField()
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Invalid field.")
		return nil
	}

	// Stored verbatim, Amount included; balance validates amounts when it reads them.
	value, err := s.input.Line(fmt.Sprintf("New value for %s: ", field))
	if err != nil {
		return err
	}
	if err := s.store.Edit(index, field, value); err != nil {
		return err
	}

	s.printf("Record updated.")
	s.commit(fmt.Sprintf("wallet: edit record %d %s", index, field))
	return nil
}
