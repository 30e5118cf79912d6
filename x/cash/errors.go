package cash

import (
	"github.com/iov-one/multisend/errors"
)

var (
	// ErrGasExhausted is returned when a receiver hook consumes more
	// gas than a single payment allows.
	ErrGasExhausted = errors.Register(1100, "gas exhausted")

	// ErrReceiver is returned when a receiver hook refuses an incoming
	// payment.
	ErrReceiver = errors.Register(1101, "receiver rejected payment")
)
