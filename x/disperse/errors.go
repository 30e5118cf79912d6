package disperse

import (
	"github.com/iov-one/multisend/errors"
)

var (
	// ErrReentrantCall is returned when a message enters the engine
	// while another one is still being processed.
	ErrReentrantCall = errors.Register(1200, "reentrant call")

	// ErrEmptyBatch is returned when a batch has no recipients.
	ErrEmptyBatch = errors.Register(1201, "empty batch")

	// ErrBatchTooLarge is returned when a batch has more recipients
	// than allowed.
	ErrBatchTooLarge = errors.Register(1202, "batch too large")

	// ErrLengthMismatch is returned when recipients and amounts differ
	// in length.
	ErrLengthMismatch = errors.Register(1203, "length mismatch")

	// ErrInsufficientFunding is returned when the attached value does
	// not cover fee plus payouts.
	ErrInsufficientFunding = errors.Register(1204, "insufficient funding")

	// ErrZeroShare is returned when an equal split would give each
	// recipient nothing.
	ErrZeroShare = errors.Register(1205, "zero share")

	// ErrFeeTooHigh is returned when a flat fee above the ceiling is
	// configured.
	ErrFeeTooHigh = errors.Register(1206, "fee too high")

	// ErrTokenPull is returned when the engine cannot pull the token
	// total from the sender.
	ErrTokenPull = errors.Register(1207, "token pull failed")

	// ErrNoFunds is returned when a withdrawal finds nothing to
	// recover.
	ErrNoFunds = errors.Register(1208, "no funds")

	// ErrInsufficientBalance is returned when a withdrawal requests
	// more than the engine holds.
	ErrInsufficientBalance = errors.Register(1209, "insufficient balance")

	// ErrWithdrawal is returned when the final transfer of a withdrawal
	// fails.
	ErrWithdrawal = errors.Register(1210, "withdrawal failed")
)
