package ledger

import (
	"github.com/shopspring/decimal"
)

// Entry is the retained metadata for a successful deposit, kept so
// that later dispute/resolve/chargeback events referencing the same tx
// ID can be adjudicated. Client and Amount are fixed at creation;
// UnderDispute is the only field that changes afterwards.
type Entry struct {
	Client       uint16          `json:"client"`
	Amount       decimal.Decimal `json:"amount"`
	UnderDispute bool            `json:"under_dispute"`
}
