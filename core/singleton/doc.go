// Package singleton demonstrates six ways of managing a process-wide single
// instance:
//
//   - Eager: built during package initialisation.
//   - UnsafeLazy: built on first access without synchronisation. Concurrent
//     first callers may each build and receive a different instance. It is
//     kept as a counter-example and must not be used from several goroutines.
//   - ThreadSafe: built on first access with double-checked locking.
//   - CloneSafe: Clone hands back the canonical instance.
//   - Guarded: the internal constructor refuses to run twice.
//   - SerialSafe: decoding a serialized instance yields the canonical one.
//
// Every instance carries a UUID identity so callers can tell instances apart.
package singleton
