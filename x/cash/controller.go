package cash

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

// Controller is the functionality needed by other extensions to move
// native funds around.
type Controller interface {
	// Balance returns the coins held by the address. An unknown
	// address holds nothing and is not an error.
	Balance(db multisend.KVStore, addr multisend.Address) (coin.Coins, error)

	// MoveCoins moves the given amount from src to dest without
	// triggering any receiver hook.
	MoveCoins(db multisend.KVStore, src, dest multisend.Address, amount coin.Coin) error

	// IssueCoins credits the destination out of thin air. The amount
	// may be negative to burn.
	IssueCoins(db multisend.KVStore, dest multisend.Address, amount coin.Coin) error

	// Deliver moves the amount from src to dest and runs the
	// recipient's receiver hook, if any, under the payment gas limit.
	// The whole payment happens on a cache wrap: an error leaves no
	// trace in the store.
	Deliver(ctx multisend.Context, db multisend.KVStore, src, dest multisend.Address, amount coin.Coin) error
}

// CashController implements Controller on top of the wallet model.
type CashController struct {
	hooks *ReceiverRegistry
}

var _ Controller = CashController{}

// NewController returns a controller that consults the given registry
// for receiver hooks. A nil registry means no hooks ever run.
func NewController(hooks *ReceiverRegistry) CashController {
	return CashController{hooks: hooks}
}

func (c CashController) Balance(db multisend.KVStore, addr multisend.Address) (coin.Coins, error) {
	wallet, err := loadWallet(db, addr)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, nil
	}
	return wallet.Coins, nil
}

func (c CashController) MoveCoins(db multisend.KVStore, src, dest multisend.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive payment: %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	sender, err := loadWallet(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "%s has no %s", src, amount)
	}

	recipient, err := loadWallet(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = new(Set)
	}

	if sender.Coins, err = sender.Coins.Subtract(amount); err != nil {
		return err
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return err
	}

	if err := saveWallet(db, src, sender); err != nil {
		return err
	}
	return saveWallet(db, dest, recipient)
}

func (c CashController) IssueCoins(db multisend.KVStore, dest multisend.Address, amount coin.Coin) error {
	recipient, err := loadWallet(db, dest)
	if err != nil {
		return err
	}
	if recipient == nil {
		recipient = new(Set)
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return err
	}
	return saveWallet(db, dest, recipient)
}

func (c CashController) Deliver(ctx multisend.Context, db multisend.KVStore, src, dest multisend.Address, amount coin.Coin) error {
	cdb, ok := db.(multisend.CacheableKVStore)
	if !ok {
		// No isolation possible, run the payment directly.
		return c.deliver(ctx, db, src, dest, amount)
	}
	cache := cdb.CacheWrap()
	if err := c.deliver(ctx, cache, src, dest, amount); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}

func (c CashController) deliver(ctx multisend.Context, db multisend.KVStore, src, dest multisend.Address, amount coin.Coin) error {
	if err := c.MoveCoins(db, src, dest, amount); err != nil {
		return err
	}
	hook := c.hooks.Receiver(dest)
	if hook == nil {
		return nil
	}
	payment := Payment{Sender: src, Recipient: dest, Amount: amount}
	gas := NewGasMeter(PaymentGasLimit)
	if err := hook.OnReceive(ctx, db, payment, gas); err != nil {
		if ErrGasExhausted.Is(err) {
			return err
		}
		return errors.Wrap(ErrReceiver, err.Error())
	}
	return nil
}
