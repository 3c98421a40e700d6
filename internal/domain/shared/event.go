package shared

import (
	"github.com/shopspring/decimal"
)

// Event is one validated transaction record from the input stream.
// Amount is a NullDecimal because dispute/resolve/chargeback rows do
// not carry an amount; they reference a prior deposit by its tx ID.
type Event struct {
	Type   EventType           `json:"type"`
	Client uint16              `json:"client"`
	Tx     uint32              `json:"tx"`
	Amount decimal.NullDecimal `json:"amount,omitempty"`
}
