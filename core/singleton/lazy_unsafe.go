package singleton

import "sync/atomic"

// UnsafeLazy is constructed on first access without any synchronisation.
//
// Not safe for concurrent use: two goroutines racing on the first call can
// both observe a nil instance, both construct, and return different values.
// Use ThreadSafe when the access point is shared between goroutines.
type UnsafeLazy struct{ identity }

var (
	unsafeLazyInstance      *UnsafeLazy
	unsafeLazyConstructions atomic.Int64
)

// UnsafeLazyInstance returns the lazily built instance.
func UnsafeLazyInstance() *UnsafeLazy {
	if unsafeLazyInstance == nil {
		unsafeLazyConstructions.Add(1)
		unsafeLazyInstance = &UnsafeLazy{newIdentity()}
	}
	return unsafeLazyInstance
}

// UnsafeLazyConstructions reports how many UnsafeLazy values were built.
func UnsafeLazyConstructions() int64 { return unsafeLazyConstructions.Load() }
