package disperse

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/coin"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/gconf"
	"github.com/iov-one/multisend/x"
	"github.com/iov-one/multisend/x/cash"
	"github.com/iov-one/multisend/x/token"
)

// Gas costs charged on CheckTx.
const (
	batchCost    int64 = 100
	payoutCost   int64 = 10
	adminCost    int64 = 20
	withdrawCost int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this
// package. All fund moving handlers share one reentrancy guard.
func RegisterRoutes(r multisend.Registry, auth x.Authenticator, ctrl cash.Controller, ledger token.Ledger) {
	guard := NewGuard()

	r.Handle(PathSendEqual, SendEqualHandler{auth: auth, ctrl: ctrl, guard: guard})
	r.Handle(PathSendDifferent, SendDifferentHandler{auth: auth, ctrl: ctrl, guard: guard})
	r.Handle(PathSendEqualToken, SendEqualTokenHandler{auth: auth, ctrl: ctrl, ledger: ledger, guard: guard})
	r.Handle(PathSendDifferentToken, SendDifferentTokenHandler{auth: auth, ctrl: ctrl, ledger: ledger, guard: guard})
	r.Handle(PathToggleFees, ToggleFeesHandler{auth: auth, guard: guard})
	r.Handle(PathSetFlatFee, SetFlatFeeHandler{auth: auth, guard: guard})
	r.Handle(PathSetFeeCollector, SetFeeCollectorHandler{auth: auth, guard: guard})
	r.Handle(PathWithdraw, WithdrawHandler{auth: auth, ctrl: ctrl, guard: guard})
	r.Handle(PathWithdrawToken, WithdrawTokenHandler{auth: auth, ledger: ledger, guard: guard})
}

// SendEqualHandler splits the attached value equally.
type SendEqualHandler struct {
	auth  x.Authenticator
	ctrl  cash.Controller
	guard *Guard
}

var _ multisend.Handler = SendEqualHandler{}

func (h SendEqualHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SendEqualMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &multisend.CheckResult{
		GasAllocated: batchCost + int64(len(msg.Recipients))*payoutCost,
	}, nil
}

func (h SendEqualHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SendEqualMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf, err := GetConfiguration(db)
	if err != nil {
		return nil, err
	}
	fee := feeOf(conf)

	distributable, err := msg.Value.Subtract(fee)
	if err != nil {
		return nil, errors.Wrap(err, "value less fee")
	}
	if !distributable.IsPositive() {
		return nil, errors.Wrapf(ErrInsufficientFunding, "value %s, fee %s", msg.Value, fee)
	}
	n := int64(len(msg.Recipients))
	share, refund, err := distributable.Divide(n)
	if err != nil {
		return nil, err
	}
	if !share.IsPositive() {
		return nil, errors.Wrapf(ErrZeroShare, "%s among %d", distributable, n)
	}
	total, err := share.Multiply(n)
	if err != nil {
		return nil, err
	}

	engine := EngineAddress()
	if err := h.ctrl.MoveCoins(db, msg.Sender, engine, msg.Value); err != nil {
		return nil, errors.Wrap(err, "fund batch")
	}

	tags := collectFee(ctx, db, h.ctrl, conf, fee)
	tags = append(tags, payout(ctx, db, h.ctrl, msg.Recipients, func(int) coin.Coin { return share })...)

	if refund.IsPositive() {
		if err := h.ctrl.MoveCoins(db, engine, msg.Sender, refund); err != nil {
			return nil, errors.Wrap(err, "refund")
		}
	}

	tags = append(tags, tag(TagBatch, BatchEvent{
		Sender:     msg.Sender,
		Total:      total,
		Fee:        fee,
		Recipients: n,
	}))
	return &multisend.DeliverResult{Tags: tags}, nil
}

// SendDifferentHandler pays explicit amounts.
type SendDifferentHandler struct {
	auth  x.Authenticator
	ctrl  cash.Controller
	guard *Guard
}

var _ multisend.Handler = SendDifferentHandler{}

func (h SendDifferentHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SendDifferentMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &multisend.CheckResult{
		GasAllocated: batchCost + int64(len(msg.Recipients))*payoutCost,
	}, nil
}

func (h SendDifferentHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SendDifferentMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf, err := GetConfiguration(db)
	if err != nil {
		return nil, err
	}
	fee := feeOf(conf)

	total, err := sumCoins(msg.Amounts)
	if err != nil {
		return nil, errors.Wrap(err, "sum amounts")
	}
	required, err := total.Add(fee)
	if err != nil {
		return nil, errors.Wrap(err, "total plus fee")
	}
	if !msg.Value.IsGTE(required) {
		return nil, errors.Wrapf(ErrInsufficientFunding, "value %s, required %s", msg.Value, required)
	}

	engine := EngineAddress()
	if err := h.ctrl.MoveCoins(db, msg.Sender, engine, msg.Value); err != nil {
		return nil, errors.Wrap(err, "fund batch")
	}

	tags := collectFee(ctx, db, h.ctrl, conf, fee)
	tags = append(tags, payout(ctx, db, h.ctrl, msg.Recipients, func(i int) coin.Coin { return msg.Amounts[i] })...)

	refund, err := msg.Value.Subtract(required)
	if err != nil {
		return nil, err
	}
	if refund.IsPositive() {
		if err := h.ctrl.MoveCoins(db, engine, msg.Sender, refund); err != nil {
			return nil, errors.Wrap(err, "refund")
		}
	}

	tags = append(tags, tag(TagBatch, BatchEvent{
		Sender:     msg.Sender,
		Total:      total,
		Fee:        fee,
		Recipients: int64(len(msg.Recipients)),
	}))
	return &multisend.DeliverResult{Tags: tags}, nil
}

// SendEqualTokenHandler splits a token total equally.
type SendEqualTokenHandler struct {
	auth   x.Authenticator
	ctrl   cash.Controller
	ledger token.Ledger
	guard  *Guard
}

var _ multisend.Handler = SendEqualTokenHandler{}

func (h SendEqualTokenHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SendEqualTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &multisend.CheckResult{
		GasAllocated: batchCost + int64(len(msg.Recipients))*payoutCost,
	}, nil
}

func (h SendEqualTokenHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SendEqualTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf, err := GetConfiguration(db)
	if err != nil {
		return nil, err
	}
	fee := feeOf(conf)

	n := int64(len(msg.Recipients))
	share, _, err := msg.Total.Divide(n)
	if err != nil {
		return nil, err
	}
	if !share.IsPositive() {
		return nil, errors.Wrapf(ErrZeroShare, "%s among %d", msg.Total, n)
	}
	// Only the distributable part is pulled, the division remainder
	// never leaves the sender.
	pull, err := share.Multiply(n)
	if err != nil {
		return nil, err
	}

	tags, err := settleNativeFee(ctx, db, h.ctrl, conf, fee, msg.Sender, msg.Value)
	if err != nil {
		return nil, err
	}

	engine := EngineAddress()
	if err := h.ledger.TransferFrom(db, msg.Token, engine, msg.Sender, engine, pull); err != nil {
		return nil, errors.Wrap(ErrTokenPull, err.Error())
	}
	for _, rec := range msg.Recipients {
		if err := h.ledger.Transfer(db, msg.Token, engine, rec, share); err != nil {
			return nil, errors.Wrapf(err, "forward to %s", rec)
		}
	}

	tags = append(tags, tag(TagTokenBatch, TokenBatchEvent{
		Sender:     msg.Sender,
		Token:      msg.Token,
		Total:      pull,
		Fee:        fee,
		Recipients: n,
	}))
	return &multisend.DeliverResult{Tags: tags}, nil
}

// SendDifferentTokenHandler forwards explicit token amounts.
type SendDifferentTokenHandler struct {
	auth   x.Authenticator
	ctrl   cash.Controller
	ledger token.Ledger
	guard  *Guard
}

var _ multisend.Handler = SendDifferentTokenHandler{}

func (h SendDifferentTokenHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SendDifferentTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	return &multisend.CheckResult{
		GasAllocated: batchCost + int64(len(msg.Recipients))*payoutCost,
	}, nil
}

func (h SendDifferentTokenHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SendDifferentTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Sender) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "sender signature missing")
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf, err := GetConfiguration(db)
	if err != nil {
		return nil, err
	}
	fee := feeOf(conf)

	total, err := sumCoins(msg.Amounts)
	if err != nil {
		return nil, errors.Wrap(err, "sum amounts")
	}

	tags, err := settleNativeFee(ctx, db, h.ctrl, conf, fee, msg.Sender, msg.Value)
	if err != nil {
		return nil, err
	}

	engine := EngineAddress()
	if err := h.ledger.TransferFrom(db, msg.Token, engine, msg.Sender, engine, total); err != nil {
		return nil, errors.Wrap(ErrTokenPull, err.Error())
	}
	for i, rec := range msg.Recipients {
		if err := h.ledger.Transfer(db, msg.Token, engine, rec, msg.Amounts[i]); err != nil {
			return nil, errors.Wrapf(err, "forward to %s", rec)
		}
	}

	tags = append(tags, tag(TagTokenBatch, TokenBatchEvent{
		Sender:     msg.Sender,
		Token:      msg.Token,
		Total:      total,
		Fee:        fee,
		Recipients: int64(len(msg.Recipients)),
	}))
	return &multisend.DeliverResult{Tags: tags}, nil
}

// ToggleFeesHandler flips fee collection. Owner only.
type ToggleFeesHandler struct {
	auth  x.Authenticator
	guard *Guard
}

var _ multisend.Handler = ToggleFeesHandler{}

func (h ToggleFeesHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg ToggleFeesMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadOwnerConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &multisend.CheckResult{GasAllocated: adminCost}, nil
}

func (h ToggleFeesHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg ToggleFeesMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadOwnerConf(ctx, db, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf.FeesEnabled = !conf.FeesEnabled
	if err := gconf.Save(db, pkgName, &conf); err != nil {
		return nil, err
	}
	tags := []common.KVPair{tag(TagFeesToggled, ToggleEvent{Enabled: conf.FeesEnabled})}
	return &multisend.DeliverResult{Tags: tags}, nil
}

// SetFlatFeeHandler replaces the flat fee. Owner only.
type SetFlatFeeHandler struct {
	auth  x.Authenticator
	guard *Guard
}

var _ multisend.Handler = SetFlatFeeHandler{}

func (h SetFlatFeeHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SetFlatFeeMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadOwnerConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &multisend.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetFlatFeeHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SetFlatFeeMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadOwnerConf(ctx, db, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf.FlatFee = msg.FlatFee
	if err := gconf.Save(db, pkgName, &conf); err != nil {
		return nil, err
	}
	tags := []common.KVPair{tag(TagFlatFeeSet, FlatFeeEvent{FlatFee: conf.FlatFee})}
	return &multisend.DeliverResult{Tags: tags}, nil
}

// SetFeeCollectorHandler replaces the fee collector. Owner only.
type SetFeeCollectorHandler struct {
	auth  x.Authenticator
	guard *Guard
}

var _ multisend.Handler = SetFeeCollectorHandler{}

func (h SetFeeCollectorHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg SetFeeCollectorMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadOwnerConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &multisend.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetFeeCollectorHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg SetFeeCollectorMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadOwnerConf(ctx, db, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	conf.FeeCollector = msg.Collector
	if err := gconf.Save(db, pkgName, &conf); err != nil {
		return nil, err
	}
	tags := []common.KVPair{tag(TagCollectorSet, CollectorEvent{Collector: conf.FeeCollector})}
	return &multisend.DeliverResult{Tags: tags}, nil
}

// WithdrawHandler recovers native funds from the engine account. Owner
// only.
type WithdrawHandler struct {
	auth  x.Authenticator
	ctrl  cash.Controller
	guard *Guard
}

var _ multisend.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg WithdrawMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadOwnerConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &multisend.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg WithdrawMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadOwnerConf(ctx, db, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	engine := EngineAddress()
	balance, err := h.ctrl.Balance(db, engine)
	if err != nil {
		return nil, err
	}
	if balance.IsEmpty() {
		return nil, errors.Wrap(ErrNoFunds, "engine account is empty")
	}

	var amounts []coin.Coin
	if msg.Amount.IsZero() {
		for _, c := range balance {
			amounts = append(amounts, *c)
		}
	} else {
		if !balance.Contains(msg.Amount) {
			return nil, errors.Wrapf(ErrInsufficientBalance, "holds %s", balance)
		}
		amounts = []coin.Coin{msg.Amount}
	}

	var tags []common.KVPair
	for _, amount := range amounts {
		if err := h.ctrl.Deliver(ctx, db, engine, conf.Owner, amount); err != nil {
			return nil, errors.Wrap(ErrWithdrawal, err.Error())
		}
		tags = append(tags, tag(TagWithdrawal, WithdrawalEvent{
			Owner:  conf.Owner,
			Amount: amount,
		}))
	}
	return &multisend.DeliverResult{Tags: tags}, nil
}

// WithdrawTokenHandler recovers token balance from the engine account.
// Owner only.
type WithdrawTokenHandler struct {
	auth   x.Authenticator
	ledger token.Ledger
	guard  *Guard
}

var _ multisend.Handler = WithdrawTokenHandler{}

func (h WithdrawTokenHandler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	var msg WithdrawTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := loadOwnerConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &multisend.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawTokenHandler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	var msg WithdrawTokenMsg
	if err := multisend.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadOwnerConf(ctx, db, h.auth)
	if err != nil {
		return nil, err
	}
	if err := h.guard.Enter(); err != nil {
		return nil, err
	}
	defer h.guard.Exit()

	engine := EngineAddress()
	balance, err := h.ledger.BalanceOf(db, msg.Token, engine)
	if err != nil {
		return nil, err
	}
	if balance.IsZero() {
		return nil, errors.Wrap(ErrNoFunds, "engine holds no such token")
	}
	amount := msg.Amount
	if amount.IsZero() {
		amount = balance
	}
	if !balance.IsGTE(amount) {
		return nil, errors.Wrapf(ErrInsufficientBalance, "holds %s", balance)
	}

	if err := h.ledger.Transfer(db, msg.Token, engine, conf.Owner, amount); err != nil {
		return nil, errors.Wrap(ErrWithdrawal, err.Error())
	}
	tags := []common.KVPair{tag(TagWithdrawal, WithdrawalEvent{
		Owner:  conf.Owner,
		Token:  msg.Token,
		Amount: amount,
	})}
	return &multisend.DeliverResult{Tags: tags}, nil
}

// loadOwnerConf loads the configuration and verifies the transaction
// is authorized by the engine owner.
func loadOwnerConf(ctx multisend.Context, db multisend.KVStore, auth x.Authenticator) (Configuration, error) {
	conf, err := GetConfiguration(db)
	if err != nil {
		return conf, err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return conf, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return conf, nil
}

// collectFee pays the fee from the engine account to the collector.
// The payment runs isolated inside the controller, so on failure
// nothing is written, the failure is recorded as a tag and the batch
// continues with the fee retained by the engine.
func collectFee(ctx multisend.Context, db multisend.KVStore, ctrl cash.Controller, conf Configuration, fee coin.Coin) []common.KVPair {
	if fee.IsZero() {
		return nil
	}
	err := ctrl.Deliver(ctx, db, EngineAddress(), conf.FeeCollector, fee)
	if err == nil {
		return nil
	}

	multisend.GetLogger(ctx).Error("fee collection failed", "collector", conf.FeeCollector, "err", err)
	return []common.KVPair{tag(TagFeeFailed, FeeFailedEvent{
		Collector: conf.FeeCollector,
		Fee:       fee,
		Reason:    err.Error(),
	})}
}

// payout pays every recipient its amount from the engine account. A
// failed payment is skipped and recorded, the funds stay with the
// engine.
func payout(ctx multisend.Context, db multisend.KVStore, ctrl cash.Controller, recipients []multisend.Address, amount func(int) coin.Coin) []common.KVPair {
	engine := EngineAddress()
	var tags []common.KVPair
	for i, rec := range recipients {
		a := amount(i)
		if err := ctrl.Deliver(ctx, db, engine, rec, a); err != nil {
			multisend.GetLogger(ctx).Error("payout failed", "recipient", rec, "amount", a, "err", err)
			tags = append(tags, tag(TagTransferFailed, TransferFailedEvent{
				Recipient: rec,
				Amount:    a,
				Reason:    err.Error(),
			}))
		}
	}
	return tags
}

// settleNativeFee handles the attached value of a token batch: it must
// cover the fee, the fee is collected and any excess immediately
// refunded.
func settleNativeFee(ctx multisend.Context, db multisend.KVStore, ctrl cash.Controller, conf Configuration, fee coin.Coin, sender multisend.Address, value coin.Coin) ([]common.KVPair, error) {
	if !fee.IsZero() && !value.IsGTE(fee) {
		return nil, errors.Wrapf(ErrInsufficientFunding, "value %s, fee %s", value, fee)
	}
	if value.IsZero() {
		return nil, nil
	}
	engine := EngineAddress()
	if err := ctrl.MoveCoins(db, sender, engine, value); err != nil {
		return nil, errors.Wrap(err, "fund fee")
	}
	tags := collectFee(ctx, db, ctrl, conf, fee)
	refund, err := value.Subtract(fee)
	if err != nil {
		return nil, err
	}
	if refund.IsPositive() {
		if err := ctrl.MoveCoins(db, engine, sender, refund); err != nil {
			return nil, errors.Wrap(err, "refund")
		}
	}
	return tags, nil
}

func sumCoins(amounts []coin.Coin) (coin.Coin, error) {
	var total coin.Coin
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return total, err
		}
	}
	return total, nil
}
