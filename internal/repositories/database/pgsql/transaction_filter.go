package pgsql

import (
	"fmt"
	"strings"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// transactionListOrder sorts list results newest-date first. The seq column
// is a serial assigned at insert, so rows sharing a date come back in
// insertion order even when their created_at timestamps collide.
const transactionListOrder = "date DESC, seq ASC"

// buildTransactionWhere assembles the WHERE fragment for transaction list
// queries from the optional filter predicates. The owner constraint is
// always present and always first; present filter fields each contribute
// exactly one positionally-bound clause in a fixed order (category, from,
// to) so parameter numbering stays deterministic. Values never enter the
// SQL text itself.
func buildTransactionWhere(ownerID string, filter domain.TransactionFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{ownerID}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}
