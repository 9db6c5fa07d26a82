package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portsrepo "github.com/fintrack/fintrack_backend/internal/core/ports/repositories"
	"github.com/fintrack/fintrack_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Category:      d.Category,
		Description:   d.Description,
		Title:         d.Title,
		Date:          d.Date,
		CreatedAt:     d.CreatedAt,
	}
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		Title:         m.Title,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, type, amount, category, description, title, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Category,
		modelTxn.Description,
		modelTxn.Title,
		modelTxn.Date,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	// Owner scoping in the statement itself: a non-owned row scans as no
	// rows, indistinguishable from an absent one.
	query := `
		SELECT transaction_id, user_id, type, amount, category, description, title, date, created_at
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID, ownerID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.UserID,
		&modelTxn.Type,
		&modelTxn.Amount,
		&modelTxn.Category,
		&modelTxn.Description,
		&modelTxn.Title,
		&modelTxn.Date,
		&modelTxn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	whereSQL, args := buildTransactionWhere(ownerID, filter)

	query := fmt.Sprintf(`
        SELECT transaction_id, user_id, type, amount, category, description, title, date, created_at
        FROM transactions
        WHERE %s
        ORDER BY %s;
    `, whereSQL, transactionListOrder)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.UserID,
			&modelTxn.Type,
			&modelTxn.Amount,
			&modelTxn.Category,
			&modelTxn.Description,
			&modelTxn.Title,
			&modelTxn.Date,
			&modelTxn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, modelTxn)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	domainTxns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		domainTxns[i] = toDomainTransaction(m)
	}
	return domainTxns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	// Full replace of the mutable fields; transaction_id, user_id and
	// created_at never change.
	query := `
        UPDATE transactions
        SET type = $1, amount = $2, category = $3, description = $4, title = $5, date = $6
        WHERE transaction_id = $7 AND user_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Category,
		modelTxn.Description,
		modelTxn.Title,
		modelTxn.Date,
		modelTxn.TransactionID,
		modelTxn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Absent and not-owned collapse to the same error on purpose.
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	query := `
        DELETE FROM transactions
        WHERE transaction_id = $1 AND user_id = $2;
    `
	// Zero rows affected is fine: delete is idempotent, and removing a
	// non-owned id must have no effect rather than raise.
	_, err := r.Pool.Exec(ctx, query, transactionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) GetSummaryData(ctx context.Context, ownerID string, filter domain.TransactionFilter) (decimal.Decimal, decimal.Decimal, error) {
	whereSQL, args := buildTransactionWhere(ownerID, filter)

	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE %s;
	`, whereSQL)

	var income, expense decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error querying transaction summary: %w", err)
	}

	return income, expense, nil
}
