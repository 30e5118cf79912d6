package disperse

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes the messages, configuration and event payloads of
// this package.
var cdc = amino.NewCodec()
