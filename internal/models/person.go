package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when a constructor argument is absent.
var ErrInvalidArgument = errors.New("invalid argument")

// Person represents a simplified person from real life.
type Person struct {
	// firstName should be immutable too, but String rewrites it.
	firstName string

	// lastName is set once by NewPerson and never written again.
	lastName string
}

// NewPerson creates a person with the given names, stored verbatim.
// An empty name counts as absent and yields an error wrapping
// ErrInvalidArgument.
func NewPerson(firstName, lastName string) (*Person, error) {
	var missing []string
	if firstName == "" {
		missing = append(missing, "firstName")
	}
	if lastName == "" {
		missing = append(missing, "lastName")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", ErrInvalidArgument, strings.Join(missing, " and "))
	}

	return &Person{
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

// FirstName returns the current first name.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the last name given to NewPerson.
func (p *Person) LastName() string {
	return p.lastName
}

// FullName returns the first name, a space and the last name.
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

// String returns a representation of the person such as
// "{firstName=SUPER, lastName=Snippet}".
//
// Side effect: the stored first name is replaced by its upper-cased form
// before formatting. Printing a *Person with fmt's %v or %s calls String
// and therefore mutates it as well.
func (p *Person) String() string {
	p.firstName = strings.ToUpper(p.firstName)
	return fmt.Sprintf("{firstName=%s, lastName=%s}", p.firstName, p.lastName)
}
