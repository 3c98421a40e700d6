package memory

import (
	"github.com/payments-replay-engine/internal/domain/ledger"
)

// LedgerStore is the in-memory implementation of ledger.Store, keyed
// by tx ID.
type LedgerStore struct {
	entries map[uint32]*ledger.Entry
}

// NewLedgerStore creates an empty ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		entries: make(map[uint32]*ledger.Entry),
	}
}

// Put stores the entry under the tx ID. A reused tx ID silently
// replaces the previous entry.
func (s *LedgerStore) Put(tx uint32, entry *ledger.Entry) {
	s.entries[tx] = entry
}

// Get returns the entry for the tx ID, or nil if absent.
func (s *LedgerStore) Get(tx uint32) *ledger.Entry {
	return s.entries[tx]
}

// Compile-time check: ensure LedgerStore implements ledger.Store
var _ ledger.Store = (*LedgerStore)(nil)
