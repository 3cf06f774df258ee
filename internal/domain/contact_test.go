package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewContact_TrimsAndAccepts(t *testing.T) {
	contact, err := NewContact(" 100 ", " John ", "Doe", "0123456789", "100 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID() != "100" {
		t.Fatalf("expected trimmed id %q, got %q", "100", contact.ID())
	}
	if contact.FirstName() != "John" {
		t.Fatalf("expected trimmed first name, got %q", contact.FirstName())
	}
}

func TestNewContact_RejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name                            string
		id, first, last, phone, address string
	}{
		{"blank id", "   ", "John", "Doe", "0123456789", "100 Main St"},
		{"id too long", strings.Repeat("1", 11), "John", "Doe", "0123456789", "100 Main St"},
		{"first name too long", "100", strings.Repeat("a", 11), "Doe", "0123456789", "100 Main St"},
		{"blank last name", "100", "John", "", "0123456789", "100 Main St"},
		{"phone too short", "100", "John", "Doe", "012345678", "100 Main St"},
		{"phone too long", "100", "John", "Doe", "01234567890", "100 Main St"},
		{"phone non-digit", "100", "John", "Doe", "01234S6789", "100 Main St"},
		{"address too long", "100", "John", "Doe", "0123456789", strings.Repeat("a", 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewContact(tc.id, tc.first, tc.last, tc.phone, tc.address)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected invalid-argument, got %v", err)
			}
		})
	}
}

func TestContactUpdate_IsAtomic(t *testing.T) {
	contact, err := NewContact("100", "John", "Doe", "0123456789", "100 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Valid first name, invalid phone: nothing may change.
	err = contact.Update("Jane", "Doe", "bad", "100 Main St")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument, got %v", err)
	}
	if contact.FirstName() != "John" {
		t.Fatalf("failed update mutated first name to %q", contact.FirstName())
	}
	if contact.Phone() != "0123456789" {
		t.Fatalf("failed update mutated phone to %q", contact.Phone())
	}

	if err := contact.Update("Jane", "Smith", "9876543210", "200 Oak Ave"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.FirstName() != "Jane" || contact.LastName() != "Smith" {
		t.Fatalf("update did not apply: %q %q", contact.FirstName(), contact.LastName())
	}
	if contact.ID() != "100" {
		t.Fatalf("update must not touch the id, got %q", contact.ID())
	}
}

func TestContactCopy_IsIndependent(t *testing.T) {
	contact, err := NewContact("100", "John", "Doe", "0123456789", "100 Main St")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cp, err := contact.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cp == contact {
		t.Fatalf("copy returned the same instance")
	}

	if err := cp.SetFirstName("Jane"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.FirstName() != "John" {
		t.Fatalf("mutating the copy changed the source: %q", contact.FirstName())
	}
}

func TestContactCopy_NilSourceIsIllegalState(t *testing.T) {
	var contact *Contact
	_, err := contact.Copy()
	if !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected illegal-state, got %v", err)
	}
}
