package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()
	h := &multisendtest.Handler{}
	r.Handle("test/good", h)

	tx := &multisendtest.Tx{Msg: &multisendtest.Msg{RoutePath: "test/good"}}

	_, err := r.Check(context.Background(), nil, tx)
	assert.NoError(t, err)
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoSuchPath(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &multisendtest.Handler{})

	tx := &multisendtest.Tx{Msg: &multisendtest.Msg{RoutePath: "test/missing"}}

	_, err := r.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterPanicsOnInvalidRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &multisendtest.Handler{})

	assert.Panics(t, func() {
		r.Handle("test/good", &multisendtest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle("bad path!", &multisendtest.Handler{})
	})
}
