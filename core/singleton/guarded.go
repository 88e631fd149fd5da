package singleton

import "sync"

// Guarded can only be constructed once; GuardedInstance is the sole access
// point.
type Guarded struct{ identity }

var (
	guardedMu          sync.Mutex
	guardedConstructed bool
	guardedInstance    = mustNewGuarded()
)

// newGuarded is the only construction path and fails once an instance exists.
func newGuarded() (*Guarded, error) {
	guardedMu.Lock()
	defer guardedMu.Unlock()
	if guardedConstructed {
		return nil, ErrAlreadyInitialized
	}
	guardedConstructed = true
	return &Guarded{newIdentity()}, nil
}

func mustNewGuarded() *Guarded {
	g, err := newGuarded()
	if err != nil {
		panic(err)
	}
	return g
}

// GuardedInstance returns the canonical instance.
func GuardedInstance() *Guarded { return guardedInstance }
