package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/UltraPrikol/wallet/internal/model"
)

// ErrInvalidAmount is returned when an amount is not an integer.
var ErrInvalidAmount = errors.New("invalid amount")

// Summary holds the folded totals of a ledger.
type Summary struct {
	Balance decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ParseAmount parses a textual amount as an integer. Fractions, exponents,
// blanks and non-numeric text are rejected rather than coerced.
func ParseAmount(s string) (decimal.Decimal, error) {
	if strings.ContainsAny(s, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Compute folds records into income, expense and balance totals. Records
// whose category is neither Income nor Expense are skipped. A bad amount on
// a counted record fails the whole computation.
func Compute(records []model.Record) (Summary, error) {
	income := decimal.Zero
	expense := decimal.Zero

	for i, rec := range records {
		switch rec.Category {
		case model.CategoryIncome:
			amt, err := ParseAmount(rec.Amount)
			if err != nil {
				return Summary{}, fmt.Errorf("record %d: %w", i, err)
			}
			income = income.Add(amt)
		case model.CategoryExpense:
			amt, err := ParseAmount(rec.Amount)
			if err != nil {
				return Summary{}, fmt.Errorf("record %d: %w", i, err)
			}
			expense = expense.Add(amt)
		}
	}

	return Summary{
		Balance: income.Sub(expense),
		Income:  income,
		Expense: expense,
	}, nil
}
