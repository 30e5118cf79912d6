package disperse

import (
	"sync/atomic"
)

// Guard is the reentrancy lock shared by all handlers of this package.
// Compare-and-swap instead of a mutex so a nested call from the same
// goroutine fails instead of deadlocking.
type Guard struct {
	busy int32
}

// NewGuard returns a released guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Enter acquires the guard or fails with ErrReentrantCall when it is
// already held.
func (g *Guard) Enter() error {
	if !atomic.CompareAndSwapInt32(&g.busy, 0, 1) {
		return ErrReentrantCall
	}
	return nil
}

// Exit releases the guard. Always defer this right after a successful
// Enter.
func (g *Guard) Exit() {
	atomic.StoreInt32(&g.busy, 0)
}
