/*
Package x holds the interfaces shared between the business logic
extensions, most notably the Authenticator contract that decouples
handlers from any concrete signature verification.
*/
package x

import (
	"github.com/iov-one/multisend"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// handlers, so we can use msg.Sender-style authentication anywhere.
type Authenticator interface {
	// HasAddress returns true iff the given address is authenticated
	// in this context.
	HasAddress(multisend.Context, multisend.Address) bool
}

// MultiAuth chains together many authenticators for cases where
// multiple authentication schemes are configured on one application.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together many Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// HasAddress returns true iff any of the chained authenticators
// confirms the address.
func (m MultiAuth) HasAddress(ctx multisend.Context, addr multisend.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}
