package token

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

const optKey = "token"

// GenesisBalance is used to parse the json from the genesis file, one
// token balance per entry.
type GenesisBalance struct {
	Token  multisend.Address `json:"token"`
	Holder multisend.Address `json:"holder"`
	Amount coin.Coin         `json:"amount"`
}

// Initializer fulfils the Initializer interface to load initial token
// balances from the genesis file.
type Initializer struct{}

var _ multisend.Initializer = Initializer{}

// FromGenesis will parse initial token balances from genesis and save
// them to the database.
func (Initializer) FromGenesis(opts multisend.Options, db multisend.KVStore) error {
	balances := []GenesisBalance{}
	if err := opts.ReadOptions(optKey, &balances); err != nil {
		return err
	}
	for i, b := range balances {
		if err := b.Token.Validate(); err != nil {
			return errors.Wrapf(err, "balance #%d token", i)
		}
		if err := b.Holder.Validate(); err != nil {
			return errors.Wrapf(err, "balance #%d holder", i)
		}
		if err := IssueTokens(db, b.Token, b.Holder, b.Amount); err != nil {
			return errors.Wrapf(err, "balance #%d", i)
		}
	}
	return nil
}
