package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single income or expense record owned by one user.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID; immutable owner
	Type          TransactionType `json:"type"`          // income or expense (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Category      string          `json:"category"`      // Drawn from the taxonomy for Type
	Description   string          `json:"description"`   // Optional
	Title         string          `json:"title"`         // Required
	Date          time.Time       `json:"date"`          // Calendar date of the transaction
	CreatedAt     time.Time       `json:"createdAt"`     // Immutable creation timestamp
}

// TransactionFilter holds optional list predicates. Nil fields contribute
// no constraint.
type TransactionFilter struct {
	Category *string
	From     *time.Time
	To       *time.Time
}

// Summary holds exact decimal aggregates over a transaction set.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
