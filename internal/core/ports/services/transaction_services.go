package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// TransactionReaderSvc defines read operations over a user's transactions.
// The owner id always comes from the authenticated session, never from the
// request payload.
type TransactionReaderSvc interface {
	// ListTransactions returns the owner's transactions matching the filter,
	// most recent first.
	ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// GetSummary returns exact decimal income/expense totals and balance
	// for the owner's transactions matching the filter.
	GetSummary(ctx context.Context, ownerID string, filter domain.TransactionFilter) (*domain.Summary, error)
}

// TransactionWriterSvc defines mutations over a user's transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction for the
	// owner, returning the full record including server-assigned fields.
	CreateTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces the mutable fields of the owner's
	// transaction and returns the updated record.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes the owner's transaction. Idempotent.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// ExportSvcFacade produces downloadable exports of a user's transactions.
type ExportSvcFacade interface {
	// ExportTransactions renders the owner's filtered transactions as an
	// XLSX workbook, returning the file content and a suggested filename.
	ExportTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]byte, string, error)
}
