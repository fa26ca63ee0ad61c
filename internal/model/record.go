package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidField is returned when a field name is not one of the four record columns.
var ErrInvalidField = errors.New("invalid field")

// Category classifies a record. Income and Expense are the only categories
// the balance understands; any other value is stored but not counted.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

var titleCaser = cases.Title(language.Und)

// NormalizeCategory maps user input onto a Category. The two known markers
// match case-insensitively; anything else is title-cased word by word.
func NormalizeCategory(s string) Category {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(CategoryIncome)):
		return CategoryIncome
	case strings.EqualFold(s, string(CategoryExpense)):
		return CategoryExpense
	}
	return Category(titleCaser.String(s))
}

// Field names one column of the ledger file.
type Field string

const (
	FieldDate        Field = "Date"
	FieldCategory    Field = "Category"
	FieldAmount      Field = "Amount"
	FieldDescription Field = "Description"
)

// Fields returns the record columns in file order.
func Fields() []Field {
	return []Field{FieldDate, FieldCategory, FieldAmount, FieldDescription}
}

// ParseField resolves a column name case-insensitively.
func ParseField(s string) (Field, error) {
	s = strings.TrimSpace(s)
	for _, f := range Fields() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
}

// Record is one row in the ledger file.
type Record struct {
	Date        string
	Category    Category
	Amount      string // textual; parsed only where a number is needed
	Description string
}

type accessor struct {
	get func(r *Record) string
	set func(r *Record, v string)
}

var accessors = map[Field]accessor{
	FieldDate: {
		get: func(r *Record) string { return r.Date },
		set: func(r *Record, v string) { r.Date = v },
	},
	FieldCategory: {
		get: func(r *Record) string { return string(r.Category) },
		set: func(r *Record, v string) { r.Category = Category(v) },
	},
	FieldAmount: {
		get: func(r *Record) string { return r.Amount },
		set: func(r *Record, v string) { r.Amount = v },
	},
	FieldDescription: {
		get: func(r *Record) string { return r.Description },
		set: func(r *Record, v string) { r.Description = v },
	},
}

// Get returns the value of field f.
func (r Record) Get(f Field) (string, error) {
	a, ok := accessors[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, f)
	}
	return a.get(&r), nil
}

// Set assigns v to field f verbatim.
func (r *Record) Set(f Field, v string) error {
	a, ok := accessors[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidField, f)
	}
	a.set(r, v)
	return nil
}

// String renders the record on one line for terminal output.
func (r Record) String() string {
	return fmt.Sprintf("Date: %s, Category: %s, Amount: %s, Description: %s",
		r.Date, r.Category, r.Amount, r.Description)
}
