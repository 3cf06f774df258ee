package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewAppointment_RejectsPastAndZeroDates(t *testing.T) {
	if _, err := NewAppointment("a1", time.Now().Add(-time.Hour), "checkup"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for past date, got %v", err)
	}
	if _, err := NewAppointment("a1", time.Time{}, "checkup"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for zero date, got %v", err)
	}
	if _, err := NewAppointment("a1", time.Now().Add(time.Hour), "checkup"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconstituteAppointment_ToleratesStaleDate(t *testing.T) {
	stale := time.Now().Add(-24 * time.Hour)
	appointment, err := ReconstituteAppointment("a1", stale, "checkup")
	if err != nil {
		t.Fatalf("stale date must reconstitute: %v", err)
	}
	if !appointment.Date().Equal(stale) {
		t.Fatalf("expected date %v, got %v", stale, appointment.Date())
	}

	// Everything except the not-in-the-past rule still applies.
	if _, err := ReconstituteAppointment("a1", time.Time{}, "checkup"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for zero date, got %v", err)
	}
	if _, err := ReconstituteAppointment("", stale, "checkup"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for blank id, got %v", err)
	}
}

func TestAppointmentUpdate_IsAtomic(t *testing.T) {
	appointment, err := NewAppointment("a1", time.Now().Add(time.Hour), "checkup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	originalDate := appointment.Date()

	err = appointment.Update(time.Now().Add(-time.Hour), "follow-up")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for past date, got %v", err)
	}
	if !appointment.Date().Equal(originalDate) {
		t.Fatalf("failed update mutated date to %v", appointment.Date())
	}
	if appointment.Description() != "checkup" {
		t.Fatalf("failed update mutated description to %q", appointment.Description())
	}

	newDate := time.Now().Add(48 * time.Hour)
	if err := appointment.Update(newDate, "follow-up"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !appointment.Date().Equal(newDate) || appointment.Description() != "follow-up" {
		t.Fatalf("update did not apply")
	}
}

func TestAppointmentCopy_ToleratesStaleDate(t *testing.T) {
	appointment, err := ReconstituteAppointment("a1", time.Now().Add(-time.Hour), "checkup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cp, err := appointment.Copy()
	if err != nil {
		t.Fatalf("copy of a stale appointment must succeed: %v", err)
	}
	if cp == appointment {
		t.Fatalf("copy returned the same instance")
	}
	if err := cp.SetDescription("changed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.Description() != "checkup" {
		t.Fatalf("mutating the copy changed the source: %q", appointment.Description())
	}
}
