package disperse

import (
	"github.com/iov-one/multisend"
	"github.com/iov-one/multisend/gconf"
)

// Initializer fulfils the Initializer interface to load the engine
// configuration from the genesis file.
type Initializer struct{}

var _ multisend.Initializer = Initializer{}

// FromGenesis will parse the configuration from genesis and save it to
// the database. Validation rejects a missing owner or collector and a
// flat fee above the ceiling.
func (Initializer) FromGenesis(opts multisend.Options, db multisend.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, pkgName, &conf)
}
