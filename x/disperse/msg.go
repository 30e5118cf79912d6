package disperse

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
)

// MaxRecipients bounds the batch size of a single message.
const MaxRecipients = 200

// Path constants of all messages processed by this package.
const (
	PathSendEqual          = "disperse/send_equal"
	PathSendDifferent      = "disperse/send_different"
	PathSendEqualToken     = "disperse/send_equal_token"
	PathSendDifferentToken = "disperse/send_different_token"
	PathToggleFees         = "disperse/toggle_fees"
	PathSetFlatFee         = "disperse/set_flat_fee"
	PathSetFeeCollector    = "disperse/set_fee_collector"
	PathWithdraw           = "disperse/withdraw"
	PathWithdrawToken      = "disperse/withdraw_token"
)

var (
	_ multisend.Msg = (*SendEqualMsg)(nil)
	_ multisend.Msg = (*SendDifferentMsg)(nil)
	_ multisend.Msg = (*SendEqualTokenMsg)(nil)
	_ multisend.Msg = (*SendDifferentTokenMsg)(nil)
	_ multisend.Msg = (*ToggleFeesMsg)(nil)
	_ multisend.Msg = (*SetFlatFeeMsg)(nil)
	_ multisend.Msg = (*SetFeeCollectorMsg)(nil)
	_ multisend.Msg = (*WithdrawMsg)(nil)
	_ multisend.Msg = (*WithdrawTokenMsg)(nil)
)

// SendEqualMsg splits the attached value, less the fee, equally among
// all recipients.
type SendEqualMsg struct {
	Sender     multisend.Address   `json:"sender"`
	Recipients []multisend.Address `json:"recipients"`
	Value      coin.Coin           `json:"value"`
}

func (SendEqualMsg) Path() string {
	return PathSendEqual
}

func (m *SendEqualMsg) Validate() error {
	if err := m.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := validateRecipients(m.Recipients); err != nil {
		return err
	}
	return validateValue(m.Value)
}

func (m *SendEqualMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SendEqualMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SendDifferentMsg pays every recipient its explicit amount out of the
// attached value and refunds the excess.
type SendDifferentMsg struct {
	Sender     multisend.Address   `json:"sender"`
	Recipients []multisend.Address `json:"recipients"`
	Amounts    []coin.Coin         `json:"amounts"`
	Value      coin.Coin           `json:"value"`
}

func (SendDifferentMsg) Path() string {
	return PathSendDifferent
}

func (m *SendDifferentMsg) Validate() error {
	if err := m.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := validateRecipients(m.Recipients); err != nil {
		return err
	}
	if err := validateAmounts(m.Amounts, len(m.Recipients)); err != nil {
		return err
	}
	return validateValue(m.Value)
}

func (m *SendDifferentMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SendDifferentMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SendEqualTokenMsg splits the token total equally among all
// recipients. The attached value covers only the fee.
type SendEqualTokenMsg struct {
	Sender     multisend.Address   `json:"sender"`
	Token      multisend.Address   `json:"token"`
	Recipients []multisend.Address `json:"recipients"`
	Total      coin.Coin           `json:"total"`
	Value      coin.Coin           `json:"value"`
}

func (SendEqualTokenMsg) Path() string {
	return PathSendEqualToken
}

func (m *SendEqualTokenMsg) Validate() error {
	if err := m.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := validateRecipients(m.Recipients); err != nil {
		return err
	}
	if !m.Total.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive total: %s", m.Total)
	}
	if err := m.Total.Validate(); err != nil {
		return errors.Wrap(err, "total")
	}
	return validateValue(m.Value)
}

func (m *SendEqualTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SendEqualTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SendDifferentTokenMsg forwards every recipient its explicit token
// amount. The attached value covers only the fee.
type SendDifferentTokenMsg struct {
	Sender     multisend.Address   `json:"sender"`
	Token      multisend.Address   `json:"token"`
	Recipients []multisend.Address `json:"recipients"`
	Amounts    []coin.Coin         `json:"amounts"`
	Value      coin.Coin           `json:"value"`
}

func (SendDifferentTokenMsg) Path() string {
	return PathSendDifferentToken
}

func (m *SendDifferentTokenMsg) Validate() error {
	if err := m.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := validateRecipients(m.Recipients); err != nil {
		return err
	}
	if err := validateAmounts(m.Amounts, len(m.Recipients)); err != nil {
		return err
	}
	return validateValue(m.Value)
}

func (m *SendDifferentTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SendDifferentTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// ToggleFeesMsg flips fee collection on or off. Owner only.
type ToggleFeesMsg struct{}

func (ToggleFeesMsg) Path() string {
	return PathToggleFees
}

func (ToggleFeesMsg) Validate() error {
	return nil
}

func (m *ToggleFeesMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ToggleFeesMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SetFlatFeeMsg replaces the flat fee. Owner only.
type SetFlatFeeMsg struct {
	FlatFee coin.Coin `json:"flat_fee"`
}

func (SetFlatFeeMsg) Path() string {
	return PathSetFlatFee
}

func (m *SetFlatFeeMsg) Validate() error {
	if !m.FlatFee.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative fee: %s", m.FlatFee)
	}
	if !m.FlatFee.IsZero() {
		if err := m.FlatFee.Validate(); err != nil {
			return errors.Wrap(err, "flat fee")
		}
	}
	if aboveCeiling(m.FlatFee) {
		return errors.Wrapf(ErrFeeTooHigh, "above %s", MaxFlatFee)
	}
	return nil
}

func (m *SetFlatFeeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetFlatFeeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SetFeeCollectorMsg replaces the fee collector address. Owner only.
type SetFeeCollectorMsg struct {
	Collector multisend.Address `json:"collector"`
}

func (SetFeeCollectorMsg) Path() string {
	return PathSetFeeCollector
}

func (m *SetFeeCollectorMsg) Validate() error {
	return errors.Wrap(m.Collector.Validate(), "collector")
}

func (m *SetFeeCollectorMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetFeeCollectorMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// WithdrawMsg recovers native funds held by the engine account. A zero
// amount withdraws the whole balance. Owner only.
type WithdrawMsg struct {
	Amount coin.Coin `json:"amount"`
}

func (WithdrawMsg) Path() string {
	return PathWithdraw
}

func (m *WithdrawMsg) Validate() error {
	return validateWithdrawAmount(m.Amount)
}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// WithdrawTokenMsg recovers token balance held by the engine account.
// A zero amount withdraws the whole balance. Owner only.
type WithdrawTokenMsg struct {
	Token  multisend.Address `json:"token"`
	Amount coin.Coin         `json:"amount"`
}

func (WithdrawTokenMsg) Path() string {
	return PathWithdrawToken
}

func (m *WithdrawTokenMsg) Validate() error {
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	return validateWithdrawAmount(m.Amount)
}

func (m *WithdrawTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *WithdrawTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func validateRecipients(recipients []multisend.Address) error {
	if len(recipients) == 0 {
		return ErrEmptyBatch
	}
	if len(recipients) > MaxRecipients {
		return errors.Wrapf(ErrBatchTooLarge, "%d of %d", len(recipients), MaxRecipients)
	}
	for i, r := range recipients {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, "recipient #%d", i)
		}
	}
	return nil
}

func validateAmounts(amounts []coin.Coin, recipients int) error {
	if len(amounts) != recipients {
		return errors.Wrapf(ErrLengthMismatch, "%d amounts for %d recipients", len(amounts), recipients)
	}
	for i, a := range amounts {
		if !a.IsPositive() {
			return errors.Wrapf(errors.ErrAmount, "non-positive amount #%d: %s", i, a)
		}
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "amount #%d", i)
		}
	}
	return nil
}

func validateWithdrawAmount(amount coin.Coin) error {
	if !amount.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %s", amount)
	}
	if !amount.IsZero() {
		if err := amount.Validate(); err != nil {
			return errors.Wrap(err, "amount")
		}
	}
	return nil
}

func validateValue(value coin.Coin) error {
	if !value.IsNonNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative value: %s", value)
	}
	if !value.IsZero() {
		if err := value.Validate(); err != nil {
			return errors.Wrap(err, "value")
		}
	}
	return nil
}
