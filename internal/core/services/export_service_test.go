package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeTransactionReader serves a fixed transaction list.
type fakeTransactionReader struct {
	txns []domain.Transaction
	err  error
}

func (f *fakeTransactionReader) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return f.txns, f.err
}

func (f *fakeTransactionReader) GetSummary(ctx context.Context, ownerID string, filter domain.TransactionFilter) (*domain.Summary, error) {
	return nil, nil
}

func TestExportTransactions_WorkbookRoundTrip(t *testing.T) {
	reader := &fakeTransactionReader{txns: []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Type:          domain.TypeExpense,
			Amount:        decimal.RequireFromString("4.50"),
			Category:      "food",
			Description:   "lunch",
			Title:         "Lunch",
			Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC),
		},
		{
			TransactionID: uuid.NewString(),
			Type:          domain.TypeIncome,
			Amount:        decimal.RequireFromString("1234.5678"),
			Category:      "salary",
			Title:         "June salary",
			Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}}

	svc := services.NewExportService(reader)
	content, filename, err := svc.ExportTransactions(context.Background(), uuid.NewString(), domain.TransactionFilter{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "transactions-"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Title", "Type", "Category", "Amount", "Description", "Created At"}, rows[0])
	assert.Equal(t, "2025-06-15", rows[1][0])
	assert.Equal(t, "Lunch", rows[1][1])
	assert.Equal(t, "expense", rows[1][2])
	// Amounts survive as exact strings.
	assert.Equal(t, "4.5", rows[1][4])
	assert.Equal(t, "1234.5678", rows[2][4])
}

func TestExportTransactions_EmptyListStillProducesWorkbook(t *testing.T) {
	svc := services.NewExportService(&fakeTransactionReader{})
	content, _, err := svc.ExportTransactions(context.Background(), uuid.NewString(), domain.TransactionFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Date", rows[0][0])
}
