package disperse

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
)

// Tag keys emitted with delivery results.
const (
	TagBatch          = "disperse/batch"
	TagTokenBatch     = "disperse/token_batch"
	TagTransferFailed = "disperse/transfer_failed"
	TagFeeFailed      = "disperse/fee_failed"
	TagWithdrawal     = "disperse/withdrawal"
	TagFeesToggled    = "disperse/fees_toggled"
	TagFlatFeeSet     = "disperse/flat_fee_set"
	TagCollectorSet   = "disperse/collector_set"
)

// BatchEvent summarizes a processed native batch.
type BatchEvent struct {
	Sender     multisend.Address `json:"sender"`
	Total      coin.Coin         `json:"total"`
	Fee        coin.Coin         `json:"fee"`
	Recipients int64             `json:"recipients"`
}

// TokenBatchEvent summarizes a processed token batch.
type TokenBatchEvent struct {
	Sender     multisend.Address `json:"sender"`
	Token      multisend.Address `json:"token"`
	Total      coin.Coin         `json:"total"`
	Fee        coin.Coin         `json:"fee"`
	Recipients int64             `json:"recipients"`
}

// TransferFailedEvent records a single skipped native payout.
type TransferFailedEvent struct {
	Recipient multisend.Address `json:"recipient"`
	Amount    coin.Coin         `json:"amount"`
	Reason    string            `json:"reason"`
}

// FeeFailedEvent records a fee collection that could not complete.
type FeeFailedEvent struct {
	Collector multisend.Address `json:"collector"`
	Fee       coin.Coin         `json:"fee"`
	Reason    string            `json:"reason"`
}

// WithdrawalEvent records a recovery of engine held funds. Token is
// empty for native withdrawals.
type WithdrawalEvent struct {
	Owner  multisend.Address `json:"owner"`
	Token  multisend.Address `json:"token"`
	Amount coin.Coin         `json:"amount"`
}

// ToggleEvent records the new state of the fee switch.
type ToggleEvent struct {
	Enabled bool `json:"enabled"`
}

// FlatFeeEvent records a flat fee change.
type FlatFeeEvent struct {
	FlatFee coin.Coin `json:"flat_fee"`
}

// CollectorEvent records a fee collector change.
type CollectorEvent struct {
	Collector multisend.Address `json:"collector"`
}

// tag marshals the payload under the given key. Serialization of
// these payloads cannot fail, a failure here is a coding error.
func tag(key string, payload interface{}) common.KVPair {
	raw, err := cdc.MarshalBinaryBare(payload)
	if err != nil {
		panic(err)
	}
	return common.KVPair{Key: []byte(key), Value: raw}
}
