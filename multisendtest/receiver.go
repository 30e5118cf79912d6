package multisendtest

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/x/cash"
)

// CountingReceiver accepts every payment and remembers them.
type CountingReceiver struct {
	Payments []cash.Payment
}

var _ cash.Receiver = (*CountingReceiver)(nil)

func (r *CountingReceiver) OnReceive(ctx multisend.Context, db multisend.KVStore, p cash.Payment, gas *cash.GasMeter) error {
	r.Payments = append(r.Payments, p)
	return nil
}

// FailingReceiver rejects every payment with the declared error.
type FailingReceiver struct {
	Err error
}

var _ cash.Receiver = (*FailingReceiver)(nil)

func (r *FailingReceiver) OnReceive(multisend.Context, multisend.KVStore, cash.Payment, *cash.GasMeter) error {
	return r.Err
}

// GasHungryReceiver consumes the given amount of gas per payment. Set
// Burn above the payment gas limit to exercise gas exhaustion.
type GasHungryReceiver struct {
	Burn int64
}

var _ cash.Receiver = (*GasHungryReceiver)(nil)

func (r *GasHungryReceiver) OnReceive(ctx multisend.Context, db multisend.KVStore, p cash.Payment, gas *cash.GasMeter) error {
	return gas.Consume(r.Burn, "hungry receiver")
}

// ReenteringReceiver calls the given handler again from inside the
// hook, simulating a recipient that tries to recurse into the engine
// mid payout. The inner result is recorded for inspection and the
// payment itself is accepted.
type ReenteringReceiver struct {
	Handler multisend.Handler
	Tx      multisend.Tx

	InnerErr  error
	CallCount int
}

var _ cash.Receiver = (*ReenteringReceiver)(nil)

func (r *ReenteringReceiver) OnReceive(ctx multisend.Context, db multisend.KVStore, p cash.Payment, gas *cash.GasMeter) error {
	r.CallCount++
	_, r.InnerErr = r.Handler.Deliver(ctx, db, r.Tx)
	return nil
}
