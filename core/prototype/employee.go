package prototype

import "slices"

// Employee is a mutable value duplicated through Clone.
type Employee struct {
	name    string
	age     int
	address string
	hobbies []string
}

// NewEmployee returns an Employee owning its own copy of hobbies.
func NewEmployee(name string, age int, address string, hobbies []string) *Employee {
	return &Employee{name: name, age: age, address: address, hobbies: slices.Clone(hobbies)}
}

func (e *Employee) Name() string    { return e.name }
func (e *Employee) Age() int        { return e.age }
func (e *Employee) Address() string { return e.address }

// Hobbies returns a copy of the hobby list.
func (e *Employee) Hobbies() []string { return slices.Clone(e.hobbies) }

func (e *Employee) SetName(name string)       { e.name = name }
func (e *Employee) SetAge(age int)            { e.age = age }
func (e *Employee) SetAddress(address string) { e.address = address }
func (e *Employee) AddHobby(hobby string)     { e.hobbies = append(e.hobbies, hobby) }

// SetHobbies replaces the hobby list with a copy of hobbies.
func (e *Employee) SetHobbies(hobbies []string) { e.hobbies = slices.Clone(hobbies) }

// Clone returns an independent duplicate of e.
func (e *Employee) Clone() *Employee {
	c := *e
	// the struct copy still aliases the backing array
	c.hobbies = slices.Clone(e.hobbies)
	return &c
}
