package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/ledger"
)

func newSearchRecordCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search-record [file]",
		Short: "List records whose field matches a value exactly",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			return runSearchRecord(s)
		},
	}
}

func runSearchRecord(s *session) error {
	field, ok, err := s.askField()
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Invalid field.")
		return nil
	}

	value, err := s.input.Line(fmt.Sprintf("Value for %s: ", field))
	if err != nil {
		return err
	}

	found, err := ledger.Search(s.store.Records(), field, value)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		s.printf("No records found.")
		return nil
	}

	s.printf("Found records:")
	for _, rec := range found {
		s.printf("%s", rec)
	}
	return nil
}
