package domain

import "strings"

const (
	minFieldLength     = 1
	maxIDLength        = 10
	maxNameLength      = 10
	maxAddressLength   = 30
	contactPhoneDigits = 10
)

// Contact is a validated aggregate. The id is immutable after construction;
// every mutable field only changes through a validated setter or Update, so a
// Contact reachable outside this package is always valid.
type Contact struct {
	id        string
	firstName string
	lastName  string
	phone     string
	address   string
}

// NewContact validates the id first, then routes every field through the same
// setter-level validation used for mutation. Nothing is constructed on failure.
func NewContact(id, firstName, lastName, phone, address string) (*Contact, error) {
	if err := Length(id, "contactId", minFieldLength, maxIDLength); err != nil {
		return nil, err
	}
	c := &Contact{id: strings.TrimSpace(id)}
	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := c.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contact) ID() string        { return c.id }
func (c *Contact) FirstName() string { return c.firstName }
func (c *Contact) LastName() string  { return c.lastName }
func (c *Contact) Phone() string     { return c.phone }
func (c *Contact) Address() string   { return c.address }

func (c *Contact) SetFirstName(firstName string) error {
	trimmed, err := trimmedText(firstName, "firstName", maxNameLength)
	if err != nil {
		return err
	}
	c.firstName = trimmed
	return nil
}

func (c *Contact) SetLastName(lastName string) error {
	trimmed, err := trimmedText(lastName, "lastName", maxNameLength)
	if err != nil {
		return err
	}
	c.lastName = trimmed
	return nil
}

func (c *Contact) SetPhone(phone string) error {
	if err := Numeric(phone, "phone", contactPhoneDigits); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Contact) SetAddress(address string) error {
	trimmed, err := trimmedText(address, "address", maxAddressLength)
	if err != nil {
		return err
	}
	c.address = trimmed
	return nil
}

// Update replaces all mutable fields at once. Every new value is validated
// before any field is assigned, so a failed update leaves the contact exactly
// as it was.
func (c *Contact) Update(firstName, lastName, phone, address string) error {
	validatedFirst, err := trimmedText(firstName, "firstName", maxNameLength)
	if err != nil {
		return err
	}
	validatedLast, err := trimmedText(lastName, "lastName", maxNameLength)
	if err != nil {
		return err
	}
	if err := Numeric(phone, "phone", contactPhoneDigits); err != nil {
		return err
	}
	validatedAddress, err := trimmedText(address, "address", maxAddressLength)
	if err != nil {
		return err
	}

	c.firstName = validatedFirst
	c.lastName = validatedLast
	c.phone = phone
	c.address = validatedAddress
	return nil
}

// Copy revalidates the source state and builds an independent instance.
// A source that fails its own constraints indicates internal corruption and
// surfaces as an illegal-state error, not an invalid-argument one.
func (c *Contact) Copy() (*Contact, error) {
	if c == nil {
		return nil, illegalf("contact copy source must not be nil")
	}
	cp, err := NewContact(c.id, c.firstName, c.lastName, c.phone, c.address)
	if err != nil {
		return nil, illegalf("contact %q failed revalidation during copy: %v", c.id, err)
	}
	return cp, nil
}

func trimmedText(value, label string, maxLength int) (string, error) {
	if err := Length(value, label, minFieldLength, maxLength); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
