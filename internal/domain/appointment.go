package domain

import (
	"strings"
	"time"
)

const maxAppointmentDescriptionLength = 50

// Appointment is a validated aggregate whose date must be in the future at
// creation and update time. Loading or copying an appointment whose date has
// since gone by goes through ReconstituteAppointment, which skips only that
// rule; everything else is validated on every path.
type Appointment struct {
	id          string
	date        time.Time
	description string
}

func NewAppointment(id string, date time.Time, description string) (*Appointment, error) {
	if err := DateNotPast(date, "appointmentDate"); err != nil {
		return nil, err
	}
	return ReconstituteAppointment(id, date, description)
}

// ReconstituteAppointment rebuilds an appointment from values that were valid
// when first accepted. It applies every constraint except the not-in-the-past
// rule, so a stored date that has meanwhile gone by still loads. Reserved for
// Copy and the durable-store mappers; request input goes through
// NewAppointment.
func ReconstituteAppointment(id string, date time.Time, description string) (*Appointment, error) {
	if err := Length(id, "appointmentId", minFieldLength, maxIDLength); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, invalidf("appointmentDate must not be zero")
	}
	a := &Appointment{id: strings.TrimSpace(id), date: date}
	if err := a.SetDescription(description); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Appointment) ID() string          { return a.id }
func (a *Appointment) Description() string { return a.description }

// Date returns the appointment date. time.Time is a value, so the caller
// cannot mutate the stored field through the return.
func (a *Appointment) Date() time.Time { return a.date }

func (a *Appointment) SetDescription(description string) error {
	trimmed, err := trimmedText(description, "description", maxAppointmentDescriptionLength)
	if err != nil {
		return err
	}
	a.description = trimmed
	return nil
}

// Update validates both new values before assigning either. The new date must
// not be in the past; the stored date is only replaced on full success.
func (a *Appointment) Update(date time.Time, description string) error {
	if err := DateNotPast(date, "appointmentDate"); err != nil {
		return err
	}
	validatedDescription, err := trimmedText(description, "description", maxAppointmentDescriptionLength)
	if err != nil {
		return err
	}

	a.date = date
	a.description = validatedDescription
	return nil
}

// Copy revalidates the source through the reconstitute path so an appointment
// whose date was future at creation but has since passed still copies cleanly.
func (a *Appointment) Copy() (*Appointment, error) {
	if a == nil {
		return nil, illegalf("appointment copy source must not be nil")
	}
	cp, err := ReconstituteAppointment(a.id, a.date, a.description)
	if err != nil {
		return nil, illegalf("appointment %q failed revalidation during copy: %v", a.id, err)
	}
	return cp, nil
}
