package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"income", CategoryIncome},
		{"INCOME", CategoryIncome},
		{" Expense ", CategoryExpense},
		{"eXpEnSe", CategoryExpense},
		{"side gig", "Side Gig"},
		{"gift", "Gift"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCategory(tt.in), "NormalizeCategory(%q)", tt.in)
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"date", FieldDate},
		{"CATEGORY", FieldCategory},
		{"Amount", FieldAmount},
		{" description", FieldDescription},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		require.NoError(t, err, "ParseField(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseField_Invalid(t *testing.T) {
	for _, in := range []string{"", "notes", "amounts", "Date,Amount"} {
		_, err := ParseField(in)
		assert.ErrorIs(t, err, ErrInvalidField, "ParseField(%q)", in)
	}
}

func TestRecordGetSet(t *testing.T) {
	r := Record{Date: "2024-01-01", Category: CategoryIncome, Amount: "1000", Description: "salary"}

	for _, f := range Fields() {
		require.NoError(t, r.Set(f, "x-"+string(f)))
	}
	for _, f := range Fields() {
		got, err := r.Get(f)
		require.NoError(t, err)
		assert.Equal(t, "x-"+string(f), got)
	}
	assert.Equal(t, "x-Amount", r.Amount)
}

func TestRecordSet_UnknownField(t *testing.T) {
	r := Record{Amount: "10"}
	err := r.Set(Field("Notes"), "hello")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, Record{Amount: "10"}, r)

	_, err = r.Get(Field("Notes"))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestRecordString(t *testing.T) {
	r := Record{Date: "2024-01-02", Category: CategoryExpense, Amount: "200", Description: "groceries"}
	assert.Equal(t, "Date: 2024-01-02, Category: Expense, Amount: 200, Description: groceries", r.String())
}
