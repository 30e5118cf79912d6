package utils

import (
	"time"

	"github.com/iov-one/multisend"
)

// Logging is a decorator to log messages as they pass through.
type Logging struct{}

var _ multisend.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug.
func (r Logging) Check(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx, next multisend.Checker) (*multisend.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, multisend.GetPath(tx), resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info.
func (r Logging) Deliver(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx, next multisend.Deliverer) (*multisend.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, multisend.GetPath(tx), resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the
// logger.
func logDuration(ctx multisend.Context, start time.Time, path string, msg string, err error, lowPrio bool) {
	delta := time.Now().Sub(start)
	logger := multisend.GetLogger(ctx).With("path", path, "duration", delta/time.Microsecond)

	if err != nil {
		logger = logger.With("err", err)
		logger.Error(msg)
		return
	}

	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
