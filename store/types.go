package store

import "github.com/iov-one/multisend"

// Move references for all storage types into this package for shorter
// names everywhere.

type KVStore = multisend.KVStore
type CacheableKVStore = multisend.CacheableKVStore
type KVCacheWrap = multisend.KVCacheWrap
type CommitKVStore = multisend.CommitKVStore
type CommitID = multisend.CommitID
