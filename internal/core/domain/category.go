package domain

// The category taxonomies are fixed enumerations, disjoint between the two
// transaction types. A transaction's category must belong to the set implied
// by its type.

var incomeCategories = []string{
	"salary",
	"freelance",
	"investment",
	"other-income",
}

var expenseCategories = []string{
	"food",
	"transportation",
	"shopping",
	"entertainment",
	"bills",
	"healthcare",
	"education",
	"other-expense",
}

// CategoriesForType returns the category set for the given transaction type.
// Unknown types yield an empty set.
func CategoriesForType(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return incomeCategories
	case TypeExpense:
		return expenseCategories
	default:
		return nil
	}
}

// IsValidCategory reports whether category belongs to the taxonomy of t.
func IsValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesForType(t) {
		if c == category {
			return true
		}
	}
	return false
}
