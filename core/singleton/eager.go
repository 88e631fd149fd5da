package singleton

// Eager is constructed before any access.
type Eager struct{ identity }

var eagerInstance = &Eager{newIdentity()}

// EagerInstance returns the instance built at package initialisation.
func EagerInstance() *Eager { return eagerInstance }
