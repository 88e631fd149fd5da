// Package document implements the factory pattern: a closed Type enum maps to
// exactly one concrete Document implementation. Create panics on an
// unmapped Type since that can only be a programming error; Register exposes
// the same constructors by name on a factory.Registry for configuration-driven
// creation, where an unknown name is a regular error.
package document
