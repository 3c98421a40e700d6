package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payments-replay-engine/internal/domain/ledger"
)

func TestLedgerStore_PutAndGet(t *testing.T) {
	store := NewLedgerStore()

	assert.Nil(t, store.Get(1), "unknown tx has no entry")

	entry := &ledger.Entry{Client: 9, Amount: decimal.RequireFromString("3.14")}
	store.Put(1, entry)

	got := store.Get(1)
	require.NotNil(t, got)
	assert.Same(t, entry, got)
}

func TestLedgerStore_ReusedTxOverwrites(t *testing.T) {
	store := NewLedgerStore()

	first := &ledger.Entry{Client: 1, Amount: decimal.RequireFromString("1.0")}
	second := &ledger.Entry{Client: 1, Amount: decimal.RequireFromString("2.0")}

	store.Put(7, first)
	store.Put(7, second)

	// Last write wins; no uniqueness enforcement on tx IDs.
	assert.Same(t, second, store.Get(7))
}
