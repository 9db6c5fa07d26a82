package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database model for the transactions table.
// Amount maps to a NUMERIC column so no precision is lost in storage.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Title         string          `db:"title"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
}
