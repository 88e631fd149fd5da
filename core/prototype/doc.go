// Package prototype implements the prototype pattern with two copying
// disciplines. Person.Copy builds the duplicate field by field, Employee.Clone
// copies the struct and then replaces the hobby slice. Either way the copy
// shares no mutable state with its source.
package prototype
