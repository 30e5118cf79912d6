package disperse

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/gconf"
)

// pkgName is the gconf namespace of this package.
const pkgName = "disperse"

// MaxFlatFee is the highest flat fee that can ever be configured, one
// tenth of a whole native unit.
var MaxFlatFee = coin.NewCoin(0, coin.FracUnit/10, "")

// Configuration is the singleton state of the engine.
type Configuration struct {
	// Owner controls fees and recovery. Set at genesis, never changed.
	Owner multisend.Address `json:"owner"`

	// FeeCollector receives the collected fees.
	FeeCollector multisend.Address `json:"fee_collector"`

	// FlatFee is charged once per batch when fees are enabled.
	FlatFee coin.Coin `json:"flat_fee"`

	// FeesEnabled switches fee collection on and off.
	FeesEnabled bool `json:"fees_enabled"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if len(c.Owner) == 0 {
		return errors.Wrap(errors.ErrEmpty, "owner")
	}
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(c.FeeCollector) == 0 {
		return errors.Wrap(errors.ErrEmpty, "fee collector")
	}
	if err := c.FeeCollector.Validate(); err != nil {
		return errors.Wrap(err, "fee collector")
	}
	if !c.FlatFee.IsZero() {
		if err := c.FlatFee.Validate(); err != nil {
			return errors.Wrap(err, "flat fee")
		}
		if !c.FlatFee.IsNonNegative() {
			return errors.Wrap(errors.ErrAmount, "flat fee cannot be negative")
		}
		if aboveCeiling(c.FlatFee) {
			return errors.Wrapf(ErrFeeTooHigh, "above %s", MaxFlatFee)
		}
	}
	return nil
}

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// aboveCeiling compares the fee amount to MaxFlatFee, ignoring the
// ticker. The ceiling applies to whatever the native currency is.
func aboveCeiling(fee coin.Coin) bool {
	return fee.Compare(MaxFlatFee) > 0
}

// GetConfiguration loads the engine configuration. It fails if the
// package was never initialized.
func GetConfiguration(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, pkgName, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// CurrentFee returns the fee a batch pays right now: the flat fee when
// fees are enabled, zero otherwise.
func CurrentFee(db gconf.Store) (coin.Coin, error) {
	conf, err := GetConfiguration(db)
	if err != nil {
		return coin.Coin{}, err
	}
	return feeOf(conf), nil
}

func feeOf(conf Configuration) coin.Coin {
	if !conf.FeesEnabled {
		return coin.Coin{}
	}
	return conf.FlatFee
}

// EngineAddress is where funds rest while a batch is processed and
// where failed payouts are retained.
func EngineAddress() multisend.Address {
	return multisend.NewAddress([]byte("disperse/engine"))
}
