package singleton

import (
	"sync"
	"sync/atomic"
)

// ThreadSafe is constructed on first access, at most once.
type ThreadSafe struct{ identity }

var (
	threadSafeInstance      atomic.Pointer[ThreadSafe]
	threadSafeMu            sync.Mutex
	threadSafeConstructions atomic.Int64
)

// ThreadSafeInstance returns the lazily built instance. Only callers that
// observe it uninitialised take the lock; the state is checked again under
// the lock so a single instance is ever built.
func ThreadSafeInstance() *ThreadSafe {
	if inst := threadSafeInstance.Load(); inst != nil {
		return inst
	}
	threadSafeMu.Lock()
	defer threadSafeMu.Unlock()
	if inst := threadSafeInstance.Load(); inst != nil {
		return inst
	}
	threadSafeConstructions.Add(1)
	inst := &ThreadSafe{newIdentity()}
	threadSafeInstance.Store(inst)
	return inst
}

// ThreadSafeConstructions reports how many ThreadSafe values were built.
func ThreadSafeConstructions() int64 { return threadSafeConstructions.Load() }
