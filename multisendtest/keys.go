package multisendtest

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/multisend"
)

// NewKey generates a throwaway ed25519 public key and the address
// derived from it.
func NewKey() (ed25519.PublicKey, multisend.Address) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, multisend.NewAddress(pub)
}

// RandomAddress returns a valid address that no one holds a key for.
func RandomAddress() multisend.Address {
	_, addr := NewKey()
	return addr
}

// SequenceAddress returns a deterministic address derived from the
// given label. Repeated calls with the same label return the same
// address, which keeps test fixtures stable.
func SequenceAddress(label string) multisend.Address {
	return multisend.NewAddress([]byte("seq:" + label))
}
