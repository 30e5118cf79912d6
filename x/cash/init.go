package cash

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from the genesis file, one
// wallet per entry.
type GenesisAccount struct {
	Address multisend.Address `json:"address"`
	Coins   coin.Coins        `json:"coins"`
}

// Initializer fulfils the Initializer interface to load initial
// wallets from the genesis file.
type Initializer struct{}

var _ multisend.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and save it
// to the database.
func (Initializer) FromGenesis(opts multisend.Options, db multisend.KVStore) error {
	accounts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	for i, acct := range accounts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		// Genesis may list coins in any order, combine them into a
		// normalized set.
		var set Set
		for _, c := range acct.Coins {
			if c == nil {
				continue
			}
			coins, err := set.Coins.Add(*c)
			if err != nil {
				return errors.Wrapf(err, "account #%d", i)
			}
			set.Coins = coins
		}
		if err := saveWallet(db, acct.Address, &set); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
