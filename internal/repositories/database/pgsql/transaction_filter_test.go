package pgsql

import (
	"testing"
	"time"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildTransactionWhere(t *testing.T) {
	ownerID := "owner-1"
	category := "food"
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    domain.TransactionFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    domain.TransactionFilter{},
			wantWhere: "user_id = $1",
			wantArgs:  []any{ownerID},
		},
		{
			name:      "category only",
			filter:    domain.TransactionFilter{Category: &category},
			wantWhere: "user_id = $1 AND category = $2",
			wantArgs:  []any{ownerID, category},
		},
		{
			name:      "from only",
			filter:    domain.TransactionFilter{From: &from},
			wantWhere: "user_id = $1 AND date >= $2",
			wantArgs:  []any{ownerID, from},
		},
		{
			name:      "to only",
			filter:    domain.TransactionFilter{To: &to},
			wantWhere: "user_id = $1 AND date <= $2",
			wantArgs:  []any{ownerID, to},
		},
		{
			name:      "date range",
			filter:    domain.TransactionFilter{From: &from, To: &to},
			wantWhere: "user_id = $1 AND date >= $2 AND date <= $3",
			wantArgs:  []any{ownerID, from, to},
		},
		{
			name:      "all predicates keep fixed placeholder order",
			filter:    domain.TransactionFilter{Category: &category, From: &from, To: &to},
			wantWhere: "user_id = $1 AND category = $2 AND date >= $3 AND date <= $4",
			wantArgs:  []any{ownerID, category, from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildTransactionWhere(ownerID, tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildTransactionWhere_InvertedRangeStaysLiteral(t *testing.T) {
	// from > to produces a contradictory predicate rather than an error;
	// the query simply matches nothing.
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	where, args := buildTransactionWhere("owner-1", domain.TransactionFilter{From: &from, To: &to})

	assert.Equal(t, "user_id = $1 AND date >= $2 AND date <= $3", where)
	assert.Equal(t, []any{"owner-1", from, to}, args)
}

func TestTransactionListOrder_EqualDatesKeepInsertionOrder(t *testing.T) {
	// transaction_id is a random UUID; ordering by it would shuffle
	// equal-date rows. The insert serial is the only stable tie-break.
	assert.Equal(t, "date DESC, seq ASC", transactionListOrder)
	assert.NotContains(t, transactionListOrder, "transaction_id")
}
