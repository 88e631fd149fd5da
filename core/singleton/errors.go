package singleton

import "errors"

// ErrAlreadyInitialized is returned when the guarded constructor is invoked
// after the canonical instance exists. Use GuardedInstance instead.
var ErrAlreadyInitialized = errors.New("singleton instance already exists")
