package prototype

import "slices"

// Person is a mutable value duplicated through Copy.
type Person struct {
	name    string
	age     int
	address string
	hobbies []string
}

// NewPerson returns a Person owning its own copy of hobbies.
func NewPerson(name string, age int, address string, hobbies []string) *Person {
	return &Person{name: name, age: age, address: address, hobbies: slices.Clone(hobbies)}
}

func (p *Person) Name() string    { return p.name }
func (p *Person) Age() int        { return p.age }
func (p *Person) Address() string { return p.address }

// Hobbies returns a copy of the hobby list.
func (p *Person) Hobbies() []string { return slices.Clone(p.hobbies) }

func (p *Person) SetName(name string)       { p.name = name }
func (p *Person) SetAge(age int)            { p.age = age }
func (p *Person) SetAddress(address string) { p.address = address }
func (p *Person) AddHobby(hobby string)     { p.hobbies = append(p.hobbies, hobby) }

// Copy returns an independent duplicate of p.
func (p *Person) Copy() *Person {
	return NewPerson(p.name, p.age, p.address, p.hobbies)
}
