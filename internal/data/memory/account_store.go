// Package memory provides the in-memory store implementations backing
// a single replay run. The engine is a strictly sequential fold over
// one input stream, so the stores need no locking and no context.
package memory

import (
	"github.com/payments-replay-engine/internal/domain/account"
)

// AccountStore is the in-memory implementation of account.Store. It
// owns the client -> account map for the lifetime of a run.
type AccountStore struct {
	accounts map[uint16]*account.Account
}

// NewAccountStore creates an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[uint16]*account.Account),
	}
}

// GetOrCreate returns the account for the client, creating it lazily
// on first reference by any event kind.
func (s *AccountStore) GetOrCreate(client uint16) *account.Account {
	if acc, ok := s.accounts[client]; ok {
		return acc
	}

	acc := account.NewAccount(client)
	s.accounts[client] = acc
	return acc
}

// Get returns the account for the client, or nil if never seen.
func (s *AccountStore) Get(client uint16) *account.Account {
	return s.accounts[client]
}

// All returns every account created during the run. Map iteration
// order is unspecified; callers needing determinism must sort.
func (s *AccountStore) All() []*account.Account {
	all := make([]*account.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		all = append(all, acc)
	}
	return all
}

// Compile-time check: ensure AccountStore implements account.Store
var _ account.Store = (*AccountStore)(nil)
