package token

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

const (
	balancePrefix   = "tok:b:"
	allowancePrefix = "tok:a:"
)

func balanceKey(token, holder multisend.Address) []byte {
	key := make([]byte, 0, len(balancePrefix)+2*multisend.AddressLength)
	key = append(key, balancePrefix...)
	key = append(key, token...)
	return append(key, holder...)
}

func allowanceKey(token, owner, spender multisend.Address) []byte {
	key := make([]byte, 0, len(allowancePrefix)+3*multisend.AddressLength)
	key = append(key, allowancePrefix...)
	key = append(key, token...)
	key = append(key, owner...)
	return append(key, spender...)
}

// loadCoin returns the coin stored under the key, or a zero coin when
// nothing is stored.
func loadCoin(db multisend.KVStore, key []byte) (coin.Coin, error) {
	raw := db.Get(key)
	if raw == nil {
		return coin.Coin{}, nil
	}
	var c coin.Coin
	if err := cdc.UnmarshalBinaryBare(raw, &c); err != nil {
		return coin.Coin{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return c, nil
}

// saveCoin persists the coin. A zero coin deletes the entry.
func saveCoin(db multisend.KVStore, key []byte, c coin.Coin) error {
	if c.IsZero() {
		db.Delete(key)
		return nil
	}
	raw, err := cdc.MarshalBinaryBare(c)
	if err != nil {
		return err
	}
	db.Set(key, raw)
	return nil
}
