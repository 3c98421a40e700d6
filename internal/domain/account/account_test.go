package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// requireInvariant asserts total == available + held, which must hold
// after every mutation.
func requireInvariant(t *testing.T, acc *Account) {
	t.Helper()
	require.True(t, acc.Total().Equal(acc.Available.Add(acc.Held)),
		"total must equal available + held")
}

func TestNewAccount(t *testing.T) {
	acc := NewAccount(7)

	assert.Equal(t, uint16(7), acc.Client)
	assert.True(t, acc.Available.IsZero())
	assert.True(t, acc.Held.IsZero())
	assert.True(t, acc.Total().IsZero())
	assert.False(t, acc.Locked)
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("SuccessfulDeposit", func(t *testing.T) {
		acc := NewAccount(1)

		err := acc.Deposit(amt("10.50"))

		require.NoError(t, err)
		assert.True(t, acc.Available.Equal(amt("10.50")))
		assert.True(t, acc.Total().Equal(amt("10.50")))
		requireInvariant(t, acc)
	})

	t.Run("LockedAccountRejectsDeposit", func(t *testing.T) {
		acc := NewAccount(1)
		acc.Locked = true

		err := acc.Deposit(amt("10.50"))

		require.ErrorIs(t, err, ErrAccountLocked)
		assert.True(t, acc.Available.IsZero())
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("SuccessfulWithdrawal", func(t *testing.T) {
		acc := NewAccount(1)
		require.NoError(t, acc.Deposit(amt("100")))

		err := acc.Withdraw(amt("30.25"))

		require.NoError(t, err)
		assert.True(t, acc.Available.Equal(amt("69.75")))
		requireInvariant(t, acc)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		acc := NewAccount(1)
		require.NoError(t, acc.Deposit(amt("10")))

		err := acc.Withdraw(amt("10.0001"))

		require.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, acc.Available.Equal(amt("10")), "failed withdrawal must not change the balance")
	})

	t.Run("HeldFundsDoNotCoverWithdrawal", func(t *testing.T) {
		acc := NewAccount(1)
		require.NoError(t, acc.Deposit(amt("10")))
		acc.Hold(amt("8"))

		err := acc.Withdraw(amt("5"))

		require.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, acc.Available.Equal(amt("2")))
		assert.True(t, acc.Held.Equal(amt("8")))
	})

	t.Run("LockedAccountRejectsWithdrawal", func(t *testing.T) {
		acc := NewAccount(1)
		require.NoError(t, acc.Deposit(amt("100")))
		acc.Locked = true

		err := acc.Withdraw(amt("10"))

		require.ErrorIs(t, err, ErrAccountLocked)
		assert.True(t, acc.Available.Equal(amt("100")))
	})
}

func TestAccount_CanWithdraw(t *testing.T) {
	acc := NewAccount(1)
	require.NoError(t, acc.Deposit(amt("10")))

	assert.True(t, acc.CanWithdraw(amt("5")))
	assert.True(t, acc.CanWithdraw(amt("10")))
	assert.False(t, acc.CanWithdraw(amt("10.0001")))
}

func TestAccount_HoldAndRelease(t *testing.T) {
	acc := NewAccount(1)
	require.NoError(t, acc.Deposit(amt("25")))

	acc.Hold(amt("10"))
	assert.True(t, acc.Available.Equal(amt("15")))
	assert.True(t, acc.Held.Equal(amt("10")))
	assert.True(t, acc.Total().Equal(amt("25")), "a hold must not change the total")
	requireInvariant(t, acc)

	acc.Release(amt("10"))
	assert.True(t, acc.Available.Equal(amt("25")))
	assert.True(t, acc.Held.IsZero())
	assert.True(t, acc.Total().Equal(amt("25")), "a release must not change the total")
	requireInvariant(t, acc)
}

func TestAccount_Chargeback(t *testing.T) {
	acc := NewAccount(1)
	require.NoError(t, acc.Deposit(amt("25")))
	acc.Hold(amt("10"))

	acc.Chargeback(amt("10"))

	assert.True(t, acc.Available.Equal(amt("15")))
	assert.True(t, acc.Held.IsZero())
	assert.True(t, acc.Total().Equal(amt("15")), "charged-back funds are removed from the total")
	assert.True(t, acc.Locked)
	requireInvariant(t, acc)
}
