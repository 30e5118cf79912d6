package token

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

// ErrAllowance is returned when a spender tries to move more than the
// owner approved.
var ErrAllowance = errors.Register(1110, "insufficient allowance")

// Ledger is the capability other extensions consume to move token
// balances. All amounts must be positive.
type Ledger interface {
	// BalanceOf returns the holder's balance on the token. An unknown
	// holder has a zero balance.
	BalanceOf(db multisend.KVStore, token, holder multisend.Address) (coin.Coin, error)

	// Allowance returns how much the spender may still move out of the
	// owner's balance.
	Allowance(db multisend.KVStore, token, owner, spender multisend.Address) (coin.Coin, error)

	// Approve sets the spender's allowance on the owner's balance,
	// replacing any previous value.
	Approve(db multisend.KVStore, token, owner, spender multisend.Address, amount coin.Coin) error

	// Transfer moves the amount from src to dest.
	Transfer(db multisend.KVStore, token, src, dest multisend.Address, amount coin.Coin) error

	// TransferFrom moves the amount from src to dest on behalf of the
	// spender, consuming the spender's allowance.
	TransferFrom(db multisend.KVStore, token, spender, src, dest multisend.Address, amount coin.Coin) error
}

// StoreLedger implements Ledger on a key-value store.
type StoreLedger struct{}

var _ Ledger = StoreLedger{}

// NewStoreLedger returns a store backed ledger.
func NewStoreLedger() StoreLedger {
	return StoreLedger{}
}

func (StoreLedger) BalanceOf(db multisend.KVStore, token, holder multisend.Address) (coin.Coin, error) {
	return loadCoin(db, balanceKey(token, holder))
}

func (StoreLedger) Allowance(db multisend.KVStore, token, owner, spender multisend.Address) (coin.Coin, error) {
	return loadCoin(db, allowanceKey(token, owner, spender))
}

func (StoreLedger) Approve(db multisend.KVStore, token, owner, spender multisend.Address, amount coin.Coin) error {
	if !amount.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative allowance: %s", amount)
	}
	return saveCoin(db, allowanceKey(token, owner, spender), amount)
}

func (l StoreLedger) Transfer(db multisend.KVStore, token, src, dest multisend.Address, amount coin.Coin) error {
	return move(db, token, src, dest, amount)
}

func (l StoreLedger) TransferFrom(db multisend.KVStore, token, spender, src, dest multisend.Address, amount coin.Coin) error {
	key := allowanceKey(token, src, spender)
	allowance, err := loadCoin(db, key)
	if err != nil {
		return err
	}
	if !allowance.IsGTE(amount) {
		return errors.Wrapf(ErrAllowance, "%s of %s", allowance, amount)
	}
	rest, err := allowance.Subtract(amount)
	if err != nil {
		return err
	}
	if err := move(db, token, src, dest, amount); err != nil {
		return err
	}
	return saveCoin(db, key, rest)
}

// IssueTokens credits the holder out of nothing. This is how genesis
// seeds token balances, there is no issue message.
func IssueTokens(db multisend.KVStore, token, holder multisend.Address, amount coin.Coin) error {
	key := balanceKey(token, holder)
	balance, err := loadCoin(db, key)
	if err != nil {
		return err
	}
	if balance, err = balance.Add(amount); err != nil {
		return err
	}
	return saveCoin(db, key, balance)
}

func move(db multisend.KVStore, token, src, dest multisend.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}
	srcKey := balanceKey(token, src)
	balance, err := loadCoin(db, srcKey)
	if err != nil {
		return err
	}
	if !balance.IsGTE(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %s", src, balance)
	}
	rest, err := balance.Subtract(amount)
	if err != nil {
		return err
	}

	destKey := balanceKey(token, dest)
	destBalance, err := loadCoin(db, destKey)
	if err != nil {
		return err
	}
	if destBalance, err = destBalance.Add(amount); err != nil {
		return err
	}

	if err := saveCoin(db, srcKey, rest); err != nil {
		return err
	}
	return saveCoin(db, destKey, destBalance)
}
