package multisendtest

import "github.com/iov-one/multisend"

// Handler is a mock implementing multisend.Handler interface. It
// counts calls and returns declared results.
type Handler struct {
	checkCall   int
	CheckResult multisend.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult multisend.DeliverResult
	DeliverErr    error
}

var _ multisend.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx multisend.Context, db multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
