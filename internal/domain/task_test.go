package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewTask_Boundaries(t *testing.T) {
	if _, err := NewTask("1", strings.Repeat("n", 20), strings.Repeat("d", 50)); err != nil {
		t.Fatalf("max lengths must be accepted: %v", err)
	}
	if _, err := NewTask("1", strings.Repeat("n", 21), "desc"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for 21-char name, got %v", err)
	}
	if _, err := NewTask("1", "name", strings.Repeat("d", 51)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for 51-char description, got %v", err)
	}
	if _, err := NewTask("", "name", "desc"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument for blank id, got %v", err)
	}
}

func TestTaskUpdate_IsAtomic(t *testing.T) {
	task, err := NewTask("t1", "write report", "quarterly numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = task.Update("review report", strings.Repeat("d", 51))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument, got %v", err)
	}
	if task.Name() != "write report" {
		t.Fatalf("failed update mutated name to %q", task.Name())
	}

	if err := task.Update("review report", "final pass"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Name() != "review report" || task.Description() != "final pass" {
		t.Fatalf("update did not apply: %q %q", task.Name(), task.Description())
	}
}

func TestTaskCopy_IsIndependent(t *testing.T) {
	task, err := NewTask("t1", "write report", "quarterly numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cp, err := task.Copy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cp.SetName("something else"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Name() != "write report" {
		t.Fatalf("mutating the copy changed the source: %q", task.Name())
	}
}
