package singleton

// resetLazy puts both lazy singletons back in the uninitialised state.
func resetLazy() {
	unsafeLazyInstance = nil
	unsafeLazyConstructions.Store(0)
	threadSafeMu.Lock()
	threadSafeInstance.Store(nil)
	threadSafeConstructions.Store(0)
	threadSafeMu.Unlock()
}
