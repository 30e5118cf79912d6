package multisendtest

import (
	"context"
	"fmt"

	"github.com/iov-one/multisend"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses. You
// can use either Signer or Signers (or both) and each time all of
// them are considered.
type Auth struct {
	// Signer is a convenience attribute when authenticating a single
	// address.
	Signer multisend.Address

	// Signers represents an authentication of multiple addresses.
	Signers []multisend.Address
}

func (a *Auth) HasAddress(ctx multisend.Context, addr multisend.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve
// permissions.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx multisend.Context, signers ...multisend.Address) multisend.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), signers)
}

func (a *CtxAuth) signers(ctx multisend.Context) []multisend.Address {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	addrs, ok := val.([]multisend.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []multisend.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx multisend.Context, addr multisend.Address) bool {
	for _, s := range a.signers(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

type ctxAuthKey string
