package cash

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

// PaymentGasLimit is the gas allowance of a receiver hook triggered by
// a single Deliver. Enough for bookkeeping, too little for any further
// outgoing payment.
const PaymentGasLimit int64 = 2300

// Payment describes a single transfer of coins as seen by a receiver
// hook.
type Payment struct {
	Sender    multisend.Address
	Recipient multisend.Address
	Amount    coin.Coin
}

// Receiver reacts to an incoming payment. It runs on a cache wrap so
// any state it writes is discarded if it returns an error or runs out
// of gas.
type Receiver interface {
	OnReceive(ctx multisend.Context, db multisend.KVStore, p Payment, gas *GasMeter) error
}

// GasMeter tracks gas consumed by a receiver hook against a fixed
// limit.
type GasMeter struct {
	limit int64
	used  int64
}

// NewGasMeter returns a meter that allows consuming up to limit gas.
func NewGasMeter(limit int64) *GasMeter {
	return &GasMeter{limit: limit}
}

// Consume charges the given amount and fails with ErrGasExhausted once
// the total passes the limit.
func (g *GasMeter) Consume(amount int64, descr string) error {
	if amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative gas: %s", descr)
	}
	g.used += amount
	if g.used > g.limit {
		return errors.Wrapf(ErrGasExhausted, "%s: used %d of %d", descr, g.used, g.limit)
	}
	return nil
}

// Used returns the gas consumed so far.
func (g *GasMeter) Used() int64 {
	return g.used
}

// ReceiverRegistry maps addresses to their receiver hooks. Register
// all hooks during application setup, before any payment is
// processed.
type ReceiverRegistry struct {
	hooks map[string]Receiver
}

// NewReceiverRegistry returns an empty registry.
func NewReceiverRegistry() *ReceiverRegistry {
	return &ReceiverRegistry{hooks: make(map[string]Receiver)}
}

// Register installs a hook for the given address. Panics when the
// address already carries a hook.
func (r *ReceiverRegistry) Register(addr multisend.Address, hook Receiver) {
	key := addr.String()
	if _, ok := r.hooks[key]; ok {
		panic("receiver already registered: " + key)
	}
	r.hooks[key] = hook
}

// Receiver returns the hook registered for this address, or nil.
func (r *ReceiverRegistry) Receiver(addr multisend.Address) Receiver {
	if r == nil {
		return nil
	}
	return r.hooks[addr.String()]
}
