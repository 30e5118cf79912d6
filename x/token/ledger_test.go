package token_test

import (
	"testing"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest/assert"
	"github.com/iov-one/multisend/store"
	"github.com/iov-one/multisend/x/token"
)

var (
	tokenAddr = multisend.NewAddress([]byte("some-token"))
	owner     = multisend.NewAddress([]byte("owner"))
	spender   = multisend.NewAddress([]byte("spender"))
	holder    = multisend.NewAddress([]byte("holder"))
)

func TestTransfer(t *testing.T) {
	cases := map[string]struct {
		Balance coin.Coin
		Amount  coin.Coin
		WantErr *errors.Error
		WantSrc coin.Coin
		WantDst coin.Coin
	}{
		"happy path": {
			Balance: coin.NewCoin(100, 0, "TKN"),
			Amount:  coin.NewCoin(40, 0, "TKN"),
			WantSrc: coin.NewCoin(60, 0, "TKN"),
			WantDst: coin.NewCoin(40, 0, "TKN"),
		},
		"full balance": {
			Balance: coin.NewCoin(100, 0, "TKN"),
			Amount:  coin.NewCoin(100, 0, "TKN"),
			WantSrc: coin.Coin{},
			WantDst: coin.NewCoin(100, 0, "TKN"),
		},
		"insufficient balance": {
			Balance: coin.NewCoin(1, 0, "TKN"),
			Amount:  coin.NewCoin(40, 0, "TKN"),
			WantErr: errors.ErrInsufficientAmount,
			WantSrc: coin.NewCoin(1, 0, "TKN"),
		},
		"zero amount": {
			Balance: coin.NewCoin(100, 0, "TKN"),
			Amount:  coin.NewCoin(0, 0, "TKN"),
			WantErr: errors.ErrAmount,
			WantSrc: coin.NewCoin(100, 0, "TKN"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ledger := token.NewStoreLedger()
			if !tc.Balance.IsZero() {
				assert.Nil(t, token.IssueTokens(db, tokenAddr, owner, tc.Balance))
			}

			err := ledger.Transfer(db, tokenAddr, owner, holder, tc.Amount)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
			} else {
				assert.Nil(t, err)
			}

			src, err := ledger.BalanceOf(db, tokenAddr, owner)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantSrc, src)

			dst, err := ledger.BalanceOf(db, tokenAddr, holder)
			assert.Nil(t, err)
			assert.Equal(t, tc.WantDst, dst)
		})
	}
}

func TestTransferFromConsumesAllowance(t *testing.T) {
	db := store.MemStore()
	ledger := token.NewStoreLedger()
	assert.Nil(t, token.IssueTokens(db, tokenAddr, owner, coin.NewCoin(100, 0, "TKN")))
	assert.Nil(t, ledger.Approve(db, tokenAddr, owner, spender, coin.NewCoin(50, 0, "TKN")))

	assert.Nil(t, ledger.TransferFrom(db, tokenAddr, spender, owner, holder, coin.NewCoin(30, 0, "TKN")))

	allowance, err := ledger.Allowance(db, tokenAddr, owner, spender)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(20, 0, "TKN"), allowance)

	balance, err := ledger.BalanceOf(db, tokenAddr, holder)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(30, 0, "TKN"), balance)

	// A second pull over the remaining allowance must fail and leave
	// balances alone.
	err = ledger.TransferFrom(db, tokenAddr, spender, owner, holder, coin.NewCoin(30, 0, "TKN"))
	assert.IsErr(t, token.ErrAllowance, err)

	balance, err = ledger.BalanceOf(db, tokenAddr, owner)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(70, 0, "TKN"), balance)
}

func TestLedgersAreIndependent(t *testing.T) {
	db := store.MemStore()
	ledger := token.NewStoreLedger()
	other := multisend.NewAddress([]byte("other-token"))

	assert.Nil(t, token.IssueTokens(db, tokenAddr, owner, coin.NewCoin(100, 0, "TKN")))

	balance, err := ledger.BalanceOf(db, other, owner)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coin{}, balance)

	err = ledger.Transfer(db, other, owner, holder, coin.NewCoin(1, 0, "TKN"))
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
}
