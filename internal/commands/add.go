package commands

import (
	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/ledger"
	"github.com/UltraPrikol/wallet/internal/model"
)

func newAddRecordCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add-record [file]",
		Short: "Add an income or expense record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			return runAddRecord(s)
		},
	}
}

func runAddRecord(s *session) error {
	date, err := s.input.Line("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	category, err := s.input.Line("Category (Income/Expense): ")
	if err != nil {
		return err
	}
	amountText, err := s.input.Line("Amount: ")
	if err != nil {
		return err
	}
	// Nothing has been touched yet, so a bad amount aborts cleanly.
	amount, err := ledger.ParseAmount(amountText)
	if err != nil {
		return err
	}
	description, err := s.input.Line("Description: ")
	if err != nil {
		return err
	}

	rec := model.Record{
		Date:        date,
		Category:    model.NormalizeCategory(category),
		Amount:      amount.String(),
		Description: description,
	}
	if err := s.store.Append(rec); err != nil {
		return err
	}

	s.printf("Record added.")
	s.commit("wallet: add record " + rec.Date)
	return nil
}
