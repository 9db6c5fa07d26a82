package dto

import (
	"fmt"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// SaveTransactionRequest is the body for both create and full-replace
// update. The owner is never part of the payload; it comes from the session.
type SaveTransactionRequest struct {
	Type        string `json:"type" binding:"required,txtype"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// ParseDate converts the request's date string into a time.Time.
func (r SaveTransactionRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

// ListTransactionsParams defines the optional list filter query parameters.
type ListTransactionsParams struct {
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// ToFilter converts the raw query parameters into a domain filter,
// validating date formats. Empty fields contribute no predicate.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	if p.Category != "" {
		category := p.Category
		filter.Category = &category
	}
	if p.From != "" {
		from, err := time.Parse(dateLayout, p.From)
		if err != nil {
			return filter, fmt.Errorf("invalid 'from' date %q: expected %s", p.From, dateLayout)
		}
		filter.From = &from
	}
	if p.To != "" {
		to, err := time.Parse(dateLayout, p.To)
		if err != nil {
			return filter, fmt.Errorf("invalid 'to' date %q: expected %s", p.To, dateLayout)
		}
		filter.To = &to
	}
	return filter, nil
}

// TransactionResponse is the serialized shape of a transaction. Amount is a
// decimal-preserving string; dates are ISO-8601.
type TransactionResponse struct {
	TransactionID string    `json:"id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction to its wire shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		Category:      txn.Category,
		Description:   txn.Description,
		Title:         txn.Title,
		Date:          txn.Date.Format(dateLayout),
		CreatedAt:     txn.CreatedAt,
	}
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return ListTransactionsResponse{Transactions: responses}
}

// SummaryResponse carries exact decimal totals as strings.
type SummaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// ToSummaryResponse converts a domain summary to its wire shape.
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		Income:  s.Income.String(),
		Expense: s.Expense.String(),
		Balance: s.Balance.String(),
	}
}

// DeleteResponse is the body of a successful (idempotent) delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}
