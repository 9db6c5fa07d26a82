package repositories

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data.
// Every operation is scoped to the owning user; rows belonging to other
// users are invisible.
type TransactionReader interface {
	// ListTransactions returns the owner's transactions matching the filter,
	// ordered by date descending with stable insertion-order ties.
	ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionByID retrieves one transaction owned by ownerID.
	// Returns apperrors.ErrNotFound when the row is absent or not owned.
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a fully populated new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces the mutable fields of the owner's
	// transaction. Returns apperrors.ErrNotFound when no owned row matches.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes the owner's transaction. Idempotent: a
	// missing or non-owned row is not an error.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionAggregator defines aggregate queries over transaction data.
type TransactionAggregator interface {
	// GetSummaryData sums amounts by type for the owner's transactions
	// matching the filter, as exact decimals.
	GetSummaryData(ctx context.Context, ownerID string, filter domain.TransactionFilter) (income decimal.Decimal, expense decimal.Decimal, err error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionAggregator
}
