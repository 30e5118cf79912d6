package iavl

import (
	"github.com/iov-one/multisend/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// the number of recent tree nodes kept in memory
const cacheSize = 10000

// CommitStore manages an iavl committed state. All writes go through a
// CacheWrap and become durable on Commit.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with a leveldb backing under the
// given directory.
func NewCommitStore(dir, name string) *CommitStore {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		panic(err)
	}
	return &CommitStore{
		tree: iavl.NewMutableTree(db, cacheSize),
	}
}

// MemCommitStore creates a new store without disk backing, useful for
// tests.
func MemCommitStore() *CommitStore {
	return &CommitStore{
		tree: iavl.NewMutableTree(dbm.NewMemDB(), cacheSize),
	}
}

// Get returns the value at last committed state. Returns nil iff key
// doesn't exist.
func (s *CommitStore) Get(key []byte) []byte {
	_, value := s.tree.GetVersioned(key, s.tree.Version())
	return value
}

// CacheWrap returns a scratch-pad that writes into the working tree
// when written.
func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(treeStore{s.tree}, nil)
}

// Commit the next version to disk, and returns info.
func (s *CommitStore) Commit() store.CommitID {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}
}

// LoadLatestVersion loads the latest persisted version. If there was a
// crash during the last commit, it is guaranteed to return a stable
// state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// treeStore exposes the mutable iavl tree through the KVStore
// interface, so it can live under a btree cache wrap.
type treeStore struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeStore{}

func (t treeStore) Get(key []byte) []byte {
	_, value := t.tree.Get(key)
	return value
}

func (t treeStore) Has(key []byte) bool {
	return t.tree.Has(key)
}

func (t treeStore) Set(key, value []byte) {
	t.tree.Set(key, value)
}

func (t treeStore) Delete(key []byte) {
	t.tree.Remove(key)
}
