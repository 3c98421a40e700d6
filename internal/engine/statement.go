package engine

import (
	"github.com/shopspring/decimal"

	"github.com/payments-replay-engine/internal/domain/shared"
)

// Statement is the projected final state of one client account.
type Statement struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}

// Statements projects one Statement per client ever seen, in no
// particular order. Call it only after the event stream is exhausted.
func (p *Processor) Statements() []Statement {
	accounts := p.accounts.All()

	statements := make([]Statement, 0, len(accounts))
	for _, acc := range accounts {
		statements = append(statements, Statement{
			Client:    acc.Client,
			Available: acc.Available,
			Held:      acc.Held,
			Total:     acc.Total(),
			Locked:    acc.Locked,
		})
	}
	return statements
}

// Run folds a whole event sequence and returns the projection. It is
// a convenience wrapper over Process + Statements.
func (p *Processor) Run(events []shared.Event) []Statement {
	for _, ev := range events {
		p.Process(ev)
	}
	return p.Statements()
}
