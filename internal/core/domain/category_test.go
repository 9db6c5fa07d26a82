package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		txnType  TransactionType
		category string
		want     bool
	}{
		{"income category on income", TypeIncome, "salary", true},
		{"expense category on expense", TypeExpense, "food", true},
		{"income category on expense", TypeExpense, "salary", false},
		{"expense category on income", TypeIncome, "food", false},
		{"unknown category", TypeExpense, "gambling", false},
		{"unknown type", TransactionType("transfer"), "food", false},
		{"empty category", TypeExpense, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCategory(tt.txnType, tt.category))
		})
	}
}

func TestCategoriesForType_Disjoint(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range CategoriesForType(TypeIncome) {
		seen[c] = true
	}
	for _, c := range CategoriesForType(TypeExpense) {
		assert.False(t, seen[c], "category %q appears in both taxonomies", c)
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, TypeIncome.IsValid())
	assert.True(t, TypeExpense.IsValid())
	assert.False(t, TransactionType("transfer").IsValid())
	assert.False(t, TransactionType("").IsValid())
	assert.False(t, TransactionType("Income").IsValid())
}
