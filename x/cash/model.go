package cash

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

// walletPrefix is the key prefix wallets are stored under.
const walletPrefix = "cash:"

// Set is the value persisted per address: the coins held by a wallet.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

var _ multisend.Persistent = (*Set)(nil)

// Validate requires that all coins are valid, sorted and unique.
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins.
func (s *Set) Copy() *Set {
	return &Set{Coins: s.Coins.Clone()}
}

// Marshal serializes the set.
func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

// Unmarshal deserializes the set in place.
func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

func walletKey(addr multisend.Address) []byte {
	return append([]byte(walletPrefix), addr...)
}

// loadWallet returns the wallet stored for this address, or nil if the
// address holds nothing.
func loadWallet(db multisend.KVStore, addr multisend.Address) (*Set, error) {
	raw := db.Get(walletKey(addr))
	if raw == nil {
		return nil, nil
	}
	var set Set
	if err := set.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", addr)
	}
	return &set, nil
}

// saveWallet persists the wallet. An empty wallet deletes the entry so
// drained accounts do not accumulate in the store.
func saveWallet(db multisend.KVStore, addr multisend.Address, set *Set) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if set.Coins.IsEmpty() {
		db.Delete(walletKey(addr))
		return nil
	}
	if err := set.Validate(); err != nil {
		return errors.Wrap(err, "invalid wallet")
	}
	raw, err := set.Marshal()
	if err != nil {
		return err
	}
	db.Set(walletKey(addr), raw)
	return nil
}
