package gconf

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/errors"
)

// Store is a subset of multisend.KVStore.
type Store interface {
	Get([]byte) []byte
	Set([]byte, []byte)
}

// ValidMarshaler is implemented by objects that can serialize
// themselves to a binary representation and validate their content.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by objects that can load their state from
// a given binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration combines the two above. Any configuration singleton
// must implement it.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// Save validates the object, before writing it to a special
// "configuration" singleton for that package name.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := []byte("_c:" + pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	db.Set(key, raw)
	return nil
}

// Load will load the stored configuration singleton of that package
// name into dst.
func Load(db Store, pkg string, dst Unmarshaler) error {
	key := []byte("_c:" + pkg)
	raw := db.Get(key)
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given
// Configuration object, validate it, and store it under the proper key
// in the database.
// Returns an error if anything goes wrong.
func InitConfig(db Store, opts multisend.Options, pkg string, conf Configuration) error {
	var confOptions multisend.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
