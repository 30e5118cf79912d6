package coin

import (
	"sort"
	"strings"

	"github.com/iov-one/multisend/errors"
)

// Coins is a set of coins, one per currency, sorted by the ticker name.
// A zero value coin is never kept in the set.
type Coins []*Coin

// Clone returns a copy containing independent copies of all coins.
func (cs Coins) Clone() Coins {
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add modifies the set to contain the original value plus the given
// coin. A new set is returned, the original one is left unmodified.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	if !IsCC(c.Ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}

	pos := sort.Search(len(cs), func(i int) bool {
		return cs[i].Ticker >= c.Ticker
	})

	if pos < len(cs) && cs[pos].Ticker == c.Ticker {
		sum, err := cs[pos].Add(c)
		if err != nil {
			return nil, err
		}
		res := cs.Clone()
		if sum.IsZero() {
			res = append(res[:pos], res[pos+1:]...)
		} else {
			res[pos] = &sum
		}
		return res, nil
	}

	res := make(Coins, 0, len(cs)+1)
	res = append(res, cs[:pos].Clone()...)
	res = append(res, c.Clone())
	res = append(res, cs[pos:].Clone()...)
	return res, nil
}

// Subtract modifies the set to contain the original value minus the
// given coin. The result may contain negative amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Contains returns true if the set holds at least the value of the
// given coin in the same currency.
func (cs Coins) Contains(c Coin) bool {
	for _, have := range cs {
		if have.Ticker == c.Ticker {
			return have.IsGTE(c)
		}
	}
	// A non-positive coin is contained even by an empty set.
	return !c.IsPositive()
}

// IsEmpty returns true if there is no non-zero value coin in the set.
func (cs Coins) IsEmpty() bool {
	for _, c := range cs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// IsPositive returns true if all coins in the set hold a positive
// value and the set is not empty.
func (cs Coins) IsPositive() bool {
	if cs.IsEmpty() {
		return false
	}
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// IsNonNegative returns true if no coin in the set holds a negative
// value.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets contain the same coins.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are valid, in alphabetical order,
// with no duplicate currencies and no zero values.
func (cs Coins) Validate() error {
	var err error
	last := ""
	for _, c := range cs {
		if c == nil {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "nil coin"))
			continue
		}
		err = errors.Append(err, c.Validate())
		if c.IsZero() {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "zero value coin"))
		}
		if c.Ticker <= last {
			err = errors.Append(err, errors.Wrapf(errors.ErrState, "not sorted: %s", c.Ticker))
		}
		last = c.Ticker
	}
	return err
}

func (cs Coins) String() string {
	if len(cs) == 0 {
		return "(empty)"
	}
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, ", ")
}
