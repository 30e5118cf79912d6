package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest"
)

// countingDecorator counts passes, once in, once out.
type countingDecorator struct {
	count int
}

var _ multisend.Decorator = (*countingDecorator)(nil)

func (c *countingDecorator) Check(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx, next multisend.Checker) (*multisend.CheckResult, error) {
	c.count++
	res, err := next.Check(ctx, store, tx)
	if err == nil {
		c.count++
	}
	return res, err
}

func (c *countingDecorator) Deliver(ctx multisend.Context, store multisend.KVStore, tx multisend.Tx, next multisend.Deliverer) (*multisend.DeliverResult, error) {
	c.count++
	res, err := next.Deliver(ctx, store, tx)
	if err == nil {
		c.count++
	}
	return res, err
}

func TestChain(t *testing.T) {
	c1 := &countingDecorator{}
	c2 := &countingDecorator{}
	h := &multisendtest.Handler{}

	stack := ChainDecorators(c1, c2).WithHandler(h)

	bg := context.Background()
	_, err := stack.Check(bg, nil, nil)
	assert.NoError(t, err)
	_, err = stack.Deliver(bg, nil, nil)
	assert.NoError(t, err)

	// decorators are counted double, once in, once out
	assert.Equal(t, 4, c1.count)
	assert.Equal(t, 4, c2.count)
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbortsOnError(t *testing.T) {
	c1 := &countingDecorator{}
	c2 := &countingDecorator{}
	h := &multisendtest.Handler{
		CheckErr:   errors.ErrState,
		DeliverErr: errors.ErrState,
	}

	stack := ChainDecorators(c1, c2).WithHandler(h)

	bg := context.Background()
	_, err := stack.Check(bg, nil, nil)
	assert.True(t, errors.ErrState.Is(err))
	_, err = stack.Deliver(bg, nil, nil)
	assert.True(t, errors.ErrState.Is(err))

	// only the in pass is counted when the handler fails
	assert.Equal(t, 2, c1.count)
	assert.Equal(t, 2, c2.count)
	assert.Equal(t, 2, h.CallCount())
}
