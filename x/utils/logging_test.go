package utils

import (
	"context"
	"testing"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest"
	"github.com/iov-one/multisend/multisendtest/assert"
)

// recordingLogger captures the level of every line written.
type recordingLogger struct {
	levels []string
}

var _ log.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Debug(msg string, keyvals ...interface{}) {
	l.levels = append(l.levels, "debug")
}

func (l *recordingLogger) Info(msg string, keyvals ...interface{}) {
	l.levels = append(l.levels, "info")
}

func (l *recordingLogger) Error(msg string, keyvals ...interface{}) {
	l.levels = append(l.levels, "error")
}

func (l *recordingLogger) With(keyvals ...interface{}) log.Logger {
	return l
}

func TestLoggingLevels(t *testing.T) {
	cases := map[string]struct {
		Handler   multisend.Handler
		Deliver   bool
		WantLevel string
	}{
		"successful check is debug": {
			Handler:   &multisendtest.Handler{},
			WantLevel: "debug",
		},
		"successful deliver is info": {
			Handler:   &multisendtest.Handler{},
			Deliver:   true,
			WantLevel: "info",
		},
		"failed check is an error": {
			Handler:   &multisendtest.Handler{CheckErr: errors.ErrState},
			WantLevel: "error",
		},
		"failed deliver is an error": {
			Handler:   &multisendtest.Handler{DeliverErr: errors.ErrState},
			Deliver:   true,
			WantLevel: "error",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			logger := &recordingLogger{}
			ctx := multisend.WithLogger(context.Background(), logger)
			tx := &multisendtest.Tx{Msg: &multisendtest.Msg{RoutePath: "test/any"}}

			if tc.Deliver {
				NewLogging().Deliver(ctx, nil, tx, tc.Handler)
			} else {
				NewLogging().Check(ctx, nil, tx, tc.Handler)
			}

			assert.Equal(t, []string{tc.WantLevel}, logger.levels)
		})
	}
}
