package app

import (
	"github.com/iov-one/multisend"
)

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []multisend.Decorator
}

// ChainDecorators takes a chain of decorators. The first decorator will
// wrap all the others, with the final handler passed to WithHandler at
// the very core.
func ChainDecorators(chain ...multisend.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the end of the current chain.
func (d Decorators) Chain(chain ...multisend.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler puts the given handler at the center of the decorator
// chain and returns the whole stack as a single handler.
func (d Decorators) WithHandler(h multisend.Handler) multisend.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decoratedHandler{d: d.chain[i], next: h}
	}
	return h
}

type decoratedHandler struct {
	d    multisend.Decorator
	next multisend.Handler
}

var _ multisend.Handler = decoratedHandler{}

func (h decoratedHandler) Check(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx) (*multisend.CheckResult, error) {
	return h.d.Check(ctx, store, tx, h.next)
}

func (h decoratedHandler) Deliver(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx) (*multisend.DeliverResult, error) {
	return h.d.Deliver(ctx, store, tx, h.next)
}
