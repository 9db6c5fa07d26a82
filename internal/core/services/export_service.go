package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

type exportService struct {
	BaseService
	transactionSvc portssvc.TransactionReaderSvc
}

// NewExportService creates the export service on top of the transaction
// reader, so exports see exactly what a list call would.
func NewExportService(transactionSvc portssvc.TransactionReaderSvc) portssvc.ExportSvcFacade {
	return &exportService{transactionSvc: transactionSvc}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

const exportSheet = "Transactions"

var exportHeader = []string{"Date", "Title", "Type", "Category", "Amount", "Description", "Created At"}

func (s *exportService) ExportTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]byte, string, error) {
	txns, err := s.transactionSvc.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, txn := range txns {
		// Amount stays a string so spreadsheet tools don't round it
		// through a float.
		row := []any{
			txn.Date.Format("2006-01-02"),
			txn.Title,
			string(txn.Type),
			txn.Category,
			txn.Amount.String(),
			txn.Description,
			txn.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", fmt.Errorf("failed to compute data cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, "", fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
