package cash_test

import (
	"context"
	"testing"

	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest"
	"github.com/iov-one/multisend/multisendtest/assert"
	"github.com/iov-one/multisend/store"
	"github.com/iov-one/multisend/x/cash"
)

func TestMoveCoins(t *testing.T) {
	alice := multisendtest.SequenceAddress("alice")
	bob := multisendtest.SequenceAddress("bob")

	cases := map[string]struct {
		Funds   coin.Coins
		Amount  coin.Coin
		WantErr *errors.Error
		WantSrc coin.Coins
		WantDst coin.Coins
	}{
		"happy path": {
			Funds:   coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			Amount:  coin.NewCoin(3, 0, "IOV"),
			WantSrc: coin.Coins{coin.NewCoinp(7, 0, "IOV")},
			WantDst: coin.Coins{coin.NewCoinp(3, 0, "IOV")},
		},
		"whole balance moves and the wallet is dropped": {
			Funds:   coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			Amount:  coin.NewCoin(10, 0, "IOV"),
			WantSrc: nil,
			WantDst: coin.Coins{coin.NewCoinp(10, 0, "IOV")},
		},
		"insufficient funds": {
			Funds:   coin.Coins{coin.NewCoinp(1, 0, "IOV")},
			Amount:  coin.NewCoin(3, 0, "IOV"),
			WantErr: errors.ErrInsufficientAmount,
			WantSrc: coin.Coins{coin.NewCoinp(1, 0, "IOV")},
		},
		"wrong currency": {
			Funds:   coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			Amount:  coin.NewCoin(3, 0, "DOGE"),
			WantErr: errors.ErrInsufficientAmount,
			WantSrc: coin.Coins{coin.NewCoinp(10, 0, "IOV")},
		},
		"zero amount": {
			Funds:   coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			Amount:  coin.NewCoin(0, 0, "IOV"),
			WantErr: errors.ErrAmount,
			WantSrc: coin.Coins{coin.NewCoinp(10, 0, "IOV")},
		},
		"negative amount": {
			Funds:   coin.Coins{coin.NewCoinp(10, 0, "IOV")},
			Amount:  coin.NewCoin(-3, 0, "IOV"),
			WantErr: errors.ErrAmount,
			WantSrc: coin.Coins{coin.NewCoinp(10, 0, "IOV")},
		},
		"unknown source account": {
			Funds:   nil,
			Amount:  coin.NewCoin(3, 0, "IOV"),
			WantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := cash.NewController(nil)
			for _, c := range tc.Funds {
				assert.Nil(t, ctrl.IssueCoins(db, alice, *c))
			}

			err := ctrl.MoveCoins(db, alice, bob, tc.Amount)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
			} else {
				assert.Nil(t, err)
			}

			src, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantSrc, src)

			dst, err := ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantDst, dst)
		})
	}
}

func TestDeliverRunsReceiverHook(t *testing.T) {
	alice := multisendtest.SequenceAddress("alice")
	bob := multisendtest.SequenceAddress("bob")

	db := store.MemStore()
	hooks := cash.NewReceiverRegistry()
	rec := &multisendtest.CountingReceiver{}
	hooks.Register(bob, rec)
	ctrl := cash.NewController(hooks)

	assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, 0, "IOV")))
	assert.Nil(t, ctrl.Deliver(context.Background(), db, alice, bob, coin.NewCoin(4, 0, "IOV")))

	assert.Equal(t, 1, len(rec.Payments))
	assert.Equal(t, coin.NewCoin(4, 0, "IOV"), rec.Payments[0].Amount)

	balance, err := ctrl.Balance(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(4, 0, "IOV")}, balance)
}

func TestDeliverFailuresLeaveNoTrace(t *testing.T) {
	alice := multisendtest.SequenceAddress("alice")
	bob := multisendtest.SequenceAddress("bob")

	cases := map[string]struct {
		Hook    cash.Receiver
		WantErr *errors.Error
	}{
		"hook rejects the payment": {
			Hook:    &multisendtest.FailingReceiver{Err: errors.ErrState},
			WantErr: cash.ErrReceiver,
		},
		"hook burns through the gas allowance": {
			Hook:    &multisendtest.GasHungryReceiver{Burn: cash.PaymentGasLimit + 1},
			WantErr: cash.ErrGasExhausted,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			hooks := cash.NewReceiverRegistry()
			hooks.Register(bob, tc.Hook)
			ctrl := cash.NewController(hooks)

			assert.Nil(t, ctrl.IssueCoins(db, alice, coin.NewCoin(10, 0, "IOV")))

			err := ctrl.Deliver(context.Background(), db, alice, bob, coin.NewCoin(4, 0, "IOV"))
			assert.IsErr(t, tc.WantErr, err)

			// The failed payment must not change any balance.
			src, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, coin.Coins{coin.NewCoinp(10, 0, "IOV")}, src)

			dst, err := ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Nil(t, dst)
		})
	}
}

func TestGasMeter(t *testing.T) {
	gas := cash.NewGasMeter(100)
	assert.Nil(t, gas.Consume(60, "first"))
	assert.Nil(t, gas.Consume(40, "second"))
	assert.Equal(t, int64(100), gas.Used())
	assert.IsErr(t, cash.ErrGasExhausted, gas.Consume(1, "over"))
}

func TestReceiverRegistryRejectsDuplicates(t *testing.T) {
	addr := multisendtest.SequenceAddress("hooked")
	hooks := cash.NewReceiverRegistry()
	hooks.Register(addr, &multisendtest.CountingReceiver{})
	assert.Panics(t, func() {
		hooks.Register(addr, &multisendtest.CountingReceiver{})
	})
}
