package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the transaction service backed by the given
// repository.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateSaveRequest checks the request fields against the domain rules and
// returns the parsed amount and date. All failures wrap apperrors.ErrValidation.
func validateSaveRequest(req dto.SaveTransactionRequest) (decimal.Decimal, time.Time, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return decimal.Zero, time.Time{}, fmt.Errorf("unknown transaction type %q: %w", req.Type, apperrors.ErrValidation)
	}
	if req.Title == "" {
		return decimal.Zero, time.Time{}, fmt.Errorf("title is required: %w", apperrors.ErrValidation)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("amount %q is not a valid decimal: %w", req.Amount, apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, time.Time{}, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	if !domain.IsValidCategory(txnType, req.Category) {
		return decimal.Zero, time.Time{}, fmt.Errorf("category %q is not valid for type %q: %w", req.Category, req.Type, apperrors.ErrValidation)
	}

	date, err := req.ParseDate()
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}

	return amount, date, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	amount, date, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	// The owner comes from the session, never from the payload.
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        ownerID,
		Type:          domain.TransactionType(req.Type),
		Amount:        amount,
		Category:      req.Category,
		Description:   req.Description,
		Title:         req.Title,
		Date:          date,
		CreatedAt:     time.Now(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	amount, date, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.transactionRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	updated := domain.Transaction{
		TransactionID: existing.TransactionID,
		UserID:        existing.UserID,
		Type:          domain.TransactionType(req.Type),
		Amount:        amount,
		Category:      req.Category,
		Description:   req.Description,
		Title:         req.Title,
		Date:          date,
		CreatedAt:     existing.CreatedAt,
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) GetSummary(ctx context.Context, ownerID string, filter domain.TransactionFilter) (*domain.Summary, error) {
	income, expense, err := s.transactionRepo.GetSummaryData(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &domain.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}
