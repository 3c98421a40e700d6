package account

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrAccountLocked     = errors.New("account is locked")
)

// Account represents one client's balance state. Total is not stored:
// it is always Available + Held, so the total==available+held invariant
// holds by construction after every mutation.
type Account struct {
	Client    uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Locked    bool            `json:"locked"`
}

// NewAccount creates an empty, unlocked account for the given client.
func NewAccount(client uint16) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns the account's total funds, available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Deposit credits the available balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}

	a.Available = a.Available.Add(amount)
	return nil
}

// Withdraw debits the available balance. It fails if the account does
// not hold enough available funds to cover the full amount; there are
// no partial withdrawals.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}
	if !a.CanWithdraw(amount) {
		return ErrInsufficientFunds
	}

	a.Available = a.Available.Sub(amount)
	return nil
}

// CanWithdraw checks if the account has sufficient available funds
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Available.GreaterThanOrEqual(amount)
}

// Hold freezes a disputed amount, moving it from available to held.
// Total is unchanged.
func (a *Account) Hold(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// Release reverses a hold, moving the amount from held back to
// available. Total is unchanged.
func (a *Account) Release(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// Chargeback removes a disputed amount from held funds permanently and
// locks the account. A locked account ignores all further events.
func (a *Account) Chargeback(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
