package multisend_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/errors"
	"github.com/iov-one/multisend/multisendtest"
	"github.com/iov-one/multisend/multisendtest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		Tx          multisend.Tx
		Destination interface{}
		WantErr     *errors.Error
	}{
		"success": {
			Tx:          &multisendtest.Tx{Msg: &multisendtest.Msg{RoutePath: "test/mine"}},
			Destination: &multisendtest.Msg{},
		},
		"message validation failure": {
			Tx:          &multisendtest.Tx{Msg: &multisendtest.Msg{Err: errors.ErrState}},
			Destination: &multisendtest.Msg{},
			WantErr:     errors.ErrState,
		},
		"transaction without a message": {
			Tx:          &multisendtest.Tx{},
			Destination: &multisendtest.Msg{},
			WantErr:     errors.ErrState,
		},
		"transaction failure": {
			Tx:          &multisendtest.Tx{Err: errors.ErrDatabase},
			Destination: &multisendtest.Msg{},
			WantErr:     errors.ErrDatabase,
		},
		"destination is not a pointer": {
			Tx:          &multisendtest.Tx{Msg: &multisendtest.Msg{}},
			Destination: multisendtest.Msg{},
			WantErr:     errors.ErrType,
		},
		"destination is a nil pointer": {
			Tx:          &multisendtest.Tx{Msg: &multisendtest.Msg{}},
			Destination: (*multisendtest.Msg)(nil),
			WantErr:     errors.ErrType,
		},
		"destination of a wrong type": {
			Tx:          &multisendtest.Tx{Msg: &multisendtest.Msg{}},
			Destination: &struct{ X int }{},
			WantErr:     errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := multisend.LoadMsg(tc.Tx, tc.Destination)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
		})
	}
}

func TestLoadMsgCopiesTheMessage(t *testing.T) {
	src := &multisendtest.Msg{RoutePath: "test/mine", Serialized: []byte("payload")}
	tx := &multisendtest.Tx{Msg: src}

	var dst multisendtest.Msg
	assert.Nil(t, multisend.LoadMsg(tx, &dst))
	assert.Equal(t, "test/mine", dst.RoutePath)
	assert.Equal(t, []byte("payload"), dst.Serialized)
}

func TestGetPath(t *testing.T) {
	tx := &multisendtest.Tx{Msg: &multisendtest.Msg{RoutePath: "test/mine"}}
	assert.Equal(t, "test/mine", multisend.GetPath(tx))

	assert.Equal(t, "(missing)", multisend.GetPath(&multisendtest.Tx{}))
}

func TestNewAddress(t *testing.T) {
	a := multisend.NewAddress([]byte("some data"))
	assert.Nil(t, a.Validate())
	assert.Equal(t, multisend.AddressLength, len(a))

	// Address must be deterministic.
	b := multisend.NewAddress([]byte("some data"))
	assert.Equal(t, true, a.Equals(b))

	c := multisend.NewAddress([]byte("other data"))
	assert.Equal(t, false, a.Equals(c))

	assert.Nil(t, multisend.NewAddress(nil))
}

func TestNewKeyDerivesAddress(t *testing.T) {
	pub, addr := multisendtest.NewKey()
	assert.Nil(t, addr.Validate())
	assert.Equal(t, true, addr.Equals(multisend.NewAddress(pub)))

	// Two generated keys must not collide.
	other := multisendtest.RandomAddress()
	assert.Equal(t, false, addr.Equals(other))
}

func TestAddressValidate(t *testing.T) {
	short := multisend.Address{1, 2, 3}
	if err := short.Validate(); !errors.ErrInput.Is(err) {
		t.Fatalf("want an input error, got %+v", err)
	}
}

func TestParseAddress(t *testing.T) {
	cases := map[string]struct {
		Enc     string
		Want    multisend.Address
		WantErr *errors.Error
	}{
		"hex without a prefix": {
			Enc:  "0102030405060708090a0b0c0d0e0f1011121314",
			Want: sequence(20),
		},
		"hex with a prefix": {
			Enc:  "hex:0102030405060708090a0b0c0d0e0f1011121314",
			Want: sequence(20),
		},
		"wrong length": {
			Enc:     "010203",
			WantErr: errors.ErrInput,
		},
		"unknown format": {
			Enc:     "base58:010203",
			WantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := multisend.ParseAddress(tc.Enc)
			if tc.WantErr != nil {
				assert.IsErr(t, tc.WantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, true, got.Equals(tc.Want))
		})
	}
}

func TestParseAddressInvalidHex(t *testing.T) {
	if _, err := multisend.ParseAddress("zzzz"); err == nil {
		t.Fatal("error expected")
	}
}

func TestAddressJSONRoundtrip(t *testing.T) {
	a := sequence(20)

	raw, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, `"0102030405060708090A0B0C0D0E0F1011121314"`, string(raw))

	var b multisend.Address
	assert.Nil(t, json.Unmarshal(raw, &b))
	assert.Equal(t, true, a.Equals(b))

	// An empty string decodes into a nil address.
	var c multisend.Address
	assert.Nil(t, json.Unmarshal([]byte(`""`), &c))
	assert.Nil(t, c)
}

// sequence returns an address of n consecutive byte values, starting
// with 1.
func sequence(n byte) multisend.Address {
	a := make(multisend.Address, n)
	for i := range a {
		a[i] = byte(i) + 1
	}
	return a
}
