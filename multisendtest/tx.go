package multisendtest

import "github.com/iov-one/multisend"

// Tx represents a transaction. It carries a single message that is to
// be processed within this transaction.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg multisend.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ multisend.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (multisend.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message with programmable results. A message is a
// request processed within a single transaction.
type Msg struct {
	// RoutePath is returned by the Path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ multisend.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
