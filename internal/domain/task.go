package domain

import "strings"

const (
	maxTaskNameLength        = 20
	maxTaskDescriptionLength = 50
)

// Task is a validated aggregate with an immutable id and two mutable text
// fields. Same lifecycle contract as Contact.
type Task struct {
	id          string
	name        string
	description string
}

func NewTask(id, name, description string) (*Task, error) {
	if err := Length(id, "taskId", minFieldLength, maxIDLength); err != nil {
		return nil, err
	}
	t := &Task{id: strings.TrimSpace(id)}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) ID() string          { return t.id }
func (t *Task) Name() string        { return t.name }
func (t *Task) Description() string { return t.description }

func (t *Task) SetName(name string) error {
	trimmed, err := trimmedText(name, "name", maxTaskNameLength)
	if err != nil {
		return err
	}
	t.name = trimmed
	return nil
}

func (t *Task) SetDescription(description string) error {
	trimmed, err := trimmedText(description, "description", maxTaskDescriptionLength)
	if err != nil {
		return err
	}
	t.description = trimmed
	return nil
}

// Update validates both new values before assigning either, keeping the
// change all-or-nothing.
func (t *Task) Update(name, description string) error {
	validatedName, err := trimmedText(name, "name", maxTaskNameLength)
	if err != nil {
		return err
	}
	validatedDescription, err := trimmedText(description, "description", maxTaskDescriptionLength)
	if err != nil {
		return err
	}

	t.name = validatedName
	t.description = validatedDescription
	return nil
}

// Copy revalidates the source and returns an independent instance.
func (t *Task) Copy() (*Task, error) {
	if t == nil {
		return nil, illegalf("task copy source must not be nil")
	}
	cp, err := NewTask(t.id, t.name, t.description)
	if err != nil {
		return nil, illegalf("task %q failed revalidation during copy: %v", t.id, err)
	}
	return cp, nil
}
