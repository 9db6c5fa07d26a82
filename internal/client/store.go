package client

import (
	"context"
	"errors"
	"sync"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// Store keeps a cached view of the caller's transactions under the current
// filter. Filter changes refresh the cache asynchronously; each refresh is
// tagged with a sequence number and responses that are no longer the latest
// are discarded, so a slow response for an old filter can never overwrite
// the result of a newer one.
type Store struct {
	client *Client

	mu           sync.Mutex
	transactions []dto.TransactionResponse
	loading      bool
	lastErr      error
	filter       Filter
	seq          uint64

	onUnauthorized func()
}

// NewStore creates a Store backed by the given client. onUnauthorized, if
// non-nil, is invoked whenever an operation fails with ErrUnauthorized; it
// is the redirect-to-login signal and is called without the store lock held.
func NewStore(client *Client, onUnauthorized func()) *Store {
	return &Store{
		client:         client,
		onUnauthorized: onUnauthorized,
	}
}

// Snapshot returns a copy of the cached transactions and whether a refresh
// is in flight.
func (s *Store) Snapshot() ([]dto.TransactionResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txns := make([]dto.TransactionResponse, len(s.transactions))
	copy(txns, s.transactions)
	return txns, s.loading
}

// LastError returns the error from the most recent completed refresh, or nil
// if it succeeded. Stale refreshes never set it; a later successful refresh
// clears it.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Filter returns the currently applied filter.
func (s *Store) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Refresh reloads the cache for the current filter.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.startRefreshLocked(ctx)
	s.mu.Unlock()
}

// SetCategory applies a category filter and refreshes. An empty string
// clears the category predicate.
func (s *Store) SetCategory(ctx context.Context, category string) {
	s.mu.Lock()
	s.filter.Category = category
	s.startRefreshLocked(ctx)
	s.mu.Unlock()
}

// SetFrom applies a start-date filter (YYYY-MM-DD, inclusive) and refreshes.
func (s *Store) SetFrom(ctx context.Context, from string) {
	s.mu.Lock()
	s.filter.From = from
	s.startRefreshLocked(ctx)
	s.mu.Unlock()
}

// SetTo applies an end-date filter (YYYY-MM-DD, inclusive) and refreshes.
func (s *Store) SetTo(ctx context.Context, to string) {
	s.mu.Lock()
	s.filter.To = to
	s.startRefreshLocked(ctx)
	s.mu.Unlock()
}

// ClearFilters removes all filter predicates and refreshes.
func (s *Store) ClearFilters(ctx context.Context) {
	s.mu.Lock()
	s.filter = Filter{}
	s.startRefreshLocked(ctx)
	s.mu.Unlock()
}

// startRefreshLocked bumps the sequence and launches the fetch. The caller
// must hold s.mu.
func (s *Store) startRefreshLocked(ctx context.Context) {
	s.seq++
	token := s.seq
	filter := s.filter
	s.loading = true

	go func() {
		txns, err := s.client.ListTransactions(ctx, filter)

		s.mu.Lock()
		if token != s.seq {
			// A newer refresh has started; this response is stale.
			s.mu.Unlock()
			return
		}
		if err == nil {
			s.transactions = txns
		}
		s.lastErr = err
		s.loading = false
		s.mu.Unlock()

		if err != nil {
			s.reportError(err)
		}
	}()
}

// Add creates the transaction on the server and, on success, prepends the
// server-returned record to the cache. The cache is untouched on failure.
func (s *Store) Add(ctx context.Context, req dto.SaveTransactionRequest) (*dto.TransactionResponse, error) {
	created, err := s.client.CreateTransaction(ctx, req)
	if err != nil {
		s.reportError(err)
		return nil, err
	}

	s.mu.Lock()
	s.transactions = append([]dto.TransactionResponse{*created}, s.transactions...)
	s.mu.Unlock()
	return created, nil
}

// Update replaces the transaction on the server and, on success, swaps the
// cached record with the same id. The cache is untouched on failure.
func (s *Store) Update(ctx context.Context, id string, req dto.SaveTransactionRequest) (*dto.TransactionResponse, error) {
	updated, err := s.client.UpdateTransaction(ctx, id, req)
	if err != nil {
		s.reportError(err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].TransactionID == id {
			s.transactions[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the transaction on the server and, on success, drops the
// cached record with the same id. The cache is untouched on failure.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteTransaction(ctx, id); err != nil {
		s.reportError(err)
		return err
	}

	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].TransactionID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// reportError fires the unauthorized hook for session-expiry class failures.
func (s *Store) reportError(err error) {
	if s.onUnauthorized != nil && errors.Is(err, apperrors.ErrUnauthorized) {
		s.onUnauthorized()
	}
}
