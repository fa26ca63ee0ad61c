package commands

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/UltraPrikol/wallet/internal/ledger"
)

func newBalanceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [file]",
		Short: "Show the current balance with income and expense totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, args)
			if err != nil {
				return err
			}
			return runBalance(s)
		},
	}
}

func runBalance(s *session) error {
	sum, err := ledger.Compute(s.store.Records())
	if err != nil {
		return fmt.Errorf("computing balance: %w", err)
	}

	currency := s.cfg.Display.Currency
	lines := []struct {
		label string
		value decimal.Decimal
	}{
		{"Balance", sum.Balance},
		{"Income", sum.Income},
		{"Expense", sum.Expense},
	}
	for _, l := range lines {
		v, err := formatAmount(l.value, currency)
		if err != nil {
			return err
		}
		s.printf("%s: %s", l.label, v)
	}
	return nil
}

// formatAmount renders an amount as a plain integer, or in the given
// currency's display format when one is configured.
func formatAmount(amount decimal.Decimal, currency string) (string, error) {
	if currency == "" {
		return amount.String(), nil
	}
	code := strings.ToUpper(currency)
	cur := money.GetCurrency(code)
	if cur == nil {
		return "", fmt.Errorf("unknown currency %q", currency)
	}
	minor := amount.Mul(decimal.New(1, int32(cur.Fraction)))
	if !minor.BigInt().IsInt64() {
		return "", fmt.Errorf("amount %s too large to display in %s", amount, code)
	}
	return money.New(minor.IntPart(), code).Display(), nil
}
