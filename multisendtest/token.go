package multisendtest

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/x/token"
)

// TokenLedger is an in-memory token.Ledger with scripted failures.
// The zero value is ready to use.
type TokenLedger struct {
	balances   map[string]coin.Coin
	allowances map[string]coin.Coin

	// TransferFromErr if set is returned by every TransferFrom call.
	TransferFromErr error

	// TransferErr if set is returned by every Transfer call.
	TransferErr error

	// FailTransferTo maps recipient addresses (String form) to errors
	// returned when transferring to them.
	FailTransferTo map[string]error

	// FailAfter, when positive, fails every Transfer past that many
	// successful ones. Useful to break a batch in the middle.
	FailAfter int

	transfers int
}

var _ token.Ledger = (*TokenLedger)(nil)

// SetBalance overwrites the holder's balance on the token.
func (l *TokenLedger) SetBalance(tok, holder multisend.Address, amount coin.Coin) {
	if l.balances == nil {
		l.balances = make(map[string]coin.Coin)
	}
	l.balances[tok.String()+holder.String()] = amount
}

// SetAllowance overwrites the spender's allowance on the owner's
// balance.
func (l *TokenLedger) SetAllowance(tok, owner, spender multisend.Address, amount coin.Coin) {
	if l.allowances == nil {
		l.allowances = make(map[string]coin.Coin)
	}
	l.allowances[tok.String()+owner.String()+spender.String()] = amount
}

// TransferCount returns how many transfers went through.
func (l *TokenLedger) TransferCount() int {
	return l.transfers
}

func (l *TokenLedger) BalanceOf(db multisend.KVStore, tok, holder multisend.Address) (coin.Coin, error) {
	return l.balances[tok.String()+holder.String()], nil
}

func (l *TokenLedger) Allowance(db multisend.KVStore, tok, owner, spender multisend.Address) (coin.Coin, error) {
	return l.allowances[tok.String()+owner.String()+spender.String()], nil
}

func (l *TokenLedger) Approve(db multisend.KVStore, tok, owner, spender multisend.Address, amount coin.Coin) error {
	l.SetAllowance(tok, owner, spender, amount)
	return nil
}

func (l *TokenLedger) Transfer(db multisend.KVStore, tok, src, dest multisend.Address, amount coin.Coin) error {
	if l.TransferErr != nil {
		return l.TransferErr
	}
	if err, ok := l.FailTransferTo[dest.String()]; ok {
		return err
	}
	if l.FailAfter > 0 && l.transfers >= l.FailAfter {
		return errors.Wrapf(errors.ErrState, "scripted failure after %d transfers", l.FailAfter)
	}
	if err := l.move(tok, src, dest, amount); err != nil {
		return err
	}
	l.transfers++
	return nil
}

func (l *TokenLedger) TransferFrom(db multisend.KVStore, tok, spender, src, dest multisend.Address, amount coin.Coin) error {
	if l.TransferFromErr != nil {
		return l.TransferFromErr
	}
	key := tok.String() + src.String() + spender.String()
	allowance := l.allowances[key]
	if !allowance.IsGTE(amount) {
		return errors.Wrapf(token.ErrAllowance, "%s of %s", allowance, amount)
	}
	rest, err := allowance.Subtract(amount)
	if err != nil {
		return err
	}
	if err := l.move(tok, src, dest, amount); err != nil {
		return err
	}
	if l.allowances == nil {
		l.allowances = make(map[string]coin.Coin)
	}
	l.allowances[key] = rest
	return nil
}

func (l *TokenLedger) move(tok, src, dest multisend.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}
	if l.balances == nil {
		l.balances = make(map[string]coin.Coin)
	}
	srcKey := tok.String() + src.String()
	balance := l.balances[srcKey]
	if !balance.IsGTE(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s holds %s", src, balance)
	}
	rest, err := balance.Subtract(amount)
	if err != nil {
		return err
	}
	destKey := tok.String() + dest.String()
	destBalance, err := l.balances[destKey].Add(amount)
	if err != nil {
		return err
	}
	l.balances[srcKey] = rest
	l.balances[destKey] = destBalance
	return nil
}
