// Package builder implements the builder pattern for an immutable Person.
package builder

import "fmt"

// Person is an immutable value produced by a PersonBuilder. String fields
// that were never set are absent rather than empty.
type Person struct {
	name    *string
	age     int
	gender  *string
	address *string
}

// Name returns the name and whether it was set.
func (p *Person) Name() (string, bool) { return deref(p.name) }

// Age returns the age, 0 when unset.
func (p *Person) Age() int { return p.age }

// Gender returns the gender and whether it was set.
func (p *Person) Gender() (string, bool) { return deref(p.gender) }

// Address returns the address and whether it was set.
func (p *Person) Address() (string, bool) { return deref(p.address) }

// Equal reports whether p and o hold the same field values.
func (p *Person) Equal(o *Person) bool {
	return p.age == o.age &&
		sameOptional(p.name, o.name) &&
		sameOptional(p.gender, o.gender) &&
		sameOptional(p.address, o.address)
}

func (p *Person) String() string {
	return fmt.Sprintf("Person{name=%s age=%d gender=%s address=%s}",
		show(p.name), p.age, show(p.gender), show(p.address))
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func show(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
