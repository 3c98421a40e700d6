package account

// Store is the account store: one mutable Account per client ID,
// created lazily and never deleted. Implementations are in-memory and
// never block, so methods carry no context.
type Store interface {
	// GetOrCreate returns the account for the client, creating an
	// empty one on first reference.
	GetOrCreate(client uint16) *Account

	// Get returns the account for the client, or nil if the client has
	// never been seen.
	Get(client uint16) *Account

	// All returns every account ever created, in no particular order.
	All() []*Account
}
