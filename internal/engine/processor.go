// Package engine implements the transaction replay state machine. A
// Processor folds an ordered event stream into per-client account
// state, enforcing the dispute lifecycle and balance invariants.
//
// Every business-rule rejection (missing ledger entry, wrong client,
// wrong dispute state, insufficient funds, locked account) is a silent
// no-op: the event source cannot retract or correct a past event, so
// an inapplicable event is simply dropped rather than treated as a
// fault. The package deliberately carries no logger for this reason.
package engine

import (
	"github.com/payments-replay-engine/internal/domain/account"
	"github.com/payments-replay-engine/internal/domain/ledger"
	"github.com/payments-replay-engine/internal/domain/shared"
)

// Processor applies transaction events one at a time against the
// account store and the transaction ledger. It exclusively owns both
// stores: nothing else writes to them, and reads for projection happen
// only after the stream is exhausted.
type Processor struct {
	accounts account.Store
	entries  ledger.Store
}

// NewProcessor creates a Processor over the given stores.
func NewProcessor(accounts account.Store, entries ledger.Store) *Processor {
	return &Processor{
		accounts: accounts,
		entries:  entries,
	}
}

// Process applies a single event. Events must be fed in input order;
// correctness of the dispute lifecycle depends on total ordering
// against deposits and withdrawals.
func (p *Processor) Process(ev shared.Event) {
	switch ev.Type {
	case shared.EventTypeDeposit:
		p.handleDeposit(ev)
	case shared.EventTypeWithdrawal:
		p.handleWithdrawal(ev)
	case shared.EventTypeDispute:
		p.handleDispute(ev)
	case shared.EventTypeResolve:
		p.handleResolve(ev)
	case shared.EventTypeChargeback:
		p.handleChargeback(ev)
	}
}

func (p *Processor) handleDeposit(ev shared.Event) {
	// A deposit without an amount carries nothing to credit; drop it.
	if !ev.Amount.Valid {
		return
	}
	amount := ev.Amount.Decimal

	acc := p.accounts.GetOrCreate(ev.Client)
	if err := acc.Deposit(amount); err != nil {
		return
	}

	// Retain deposit metadata for future dispute lookups. A reused tx
	// ID overwrites the earlier entry: last write wins.
	p.entries.Put(ev.Tx, &ledger.Entry{
		Client: ev.Client,
		Amount: amount,
	})
}

func (p *Processor) handleWithdrawal(ev shared.Event) {
	if !ev.Amount.Valid {
		return
	}

	acc := p.accounts.GetOrCreate(ev.Client)

	// Locked account or insufficient available funds: the withdrawal
	// has no effect. There is no partial withdrawal.
	_ = acc.Withdraw(ev.Amount.Decimal)
}

// lookupDisputed returns the ledger entry and owning account for a
// dispute-family event, or nils if any precondition fails: unknown tx,
// entry owned by a different client, dispute state not matching
// wantDisputed, or owning account locked.
func (p *Processor) lookupDisputed(ev shared.Event, wantDisputed bool) (*ledger.Entry, *account.Account) {
	entry := p.entries.Get(ev.Tx)
	if entry == nil {
		return nil, nil
	}
	// Ownership check: the referenced tx must belong to the event's
	// own client.
	if entry.Client != ev.Client {
		return nil, nil
	}
	if entry.UnderDispute != wantDisputed {
		return nil, nil
	}

	acc := p.accounts.Get(entry.Client)
	if acc == nil || acc.Locked {
		return nil, nil
	}
	return entry, acc
}

func (p *Processor) handleDispute(ev shared.Event) {
	// Double-disputing would drain available into held twice; an entry
	// already under dispute is left alone.
	entry, acc := p.lookupDisputed(ev, false)
	if entry == nil {
		return
	}

	entry.UnderDispute = true
	acc.Hold(entry.Amount)
}

func (p *Processor) handleResolve(ev shared.Event) {
	// Only a transaction currently under dispute can be resolved.
	entry, acc := p.lookupDisputed(ev, true)
	if entry == nil {
		return
	}

	entry.UnderDispute = false
	acc.Release(entry.Amount)
}

func (p *Processor) handleChargeback(ev shared.Event) {
	// Only a transaction currently under dispute can be charged back.
	entry, acc := p.lookupDisputed(ev, true)
	if entry == nil {
		return
	}

	entry.UnderDispute = false
	acc.Chargeback(entry.Amount)
}
