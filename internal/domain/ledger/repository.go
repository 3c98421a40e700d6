package ledger

// Store is the transaction ledger: one Entry per deposit tx ID.
// Entries are never deleted; a deposit reusing a tx ID overwrites the
// previous entry (last write wins, no uniqueness enforcement).
type Store interface {
	// Put stores the entry under the tx ID, replacing any previous one.
	Put(tx uint32, entry *Entry)

	// Get returns the entry for the tx ID, or nil if no deposit ever
	// used that ID.
	Get(tx uint32) *Entry
}
