package store

import (
	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
)

// Store contracts, one per aggregate type. Every aggregate that crosses this
// boundary is a defensive copy: callers own what they get back and mutating
// it never touches the canonical instance.
//
// Save upserts a copy of the given aggregate and reports whether it inserted
// a new entry (the LoadOrStore idiom). The service layer uses that report to
// decide the winner when two adds race on the same id; an insert that loses
// to a uniqueness constraint in the durable backend surfaces as
// domain.ErrDuplicateID instead.
//
// DeleteAll exists for test isolation and is not part of the advertised
// service contract.

type ContactStore interface {
	ExistsByID(dbc dbctx.Context, id string) (bool, error)
	Save(dbc dbctx.Context, contact *domain.Contact) (bool, error)
	FindByID(dbc dbctx.Context, id string) (*domain.Contact, error)
	FindAll(dbc dbctx.Context) ([]*domain.Contact, error)
	DeleteByID(dbc dbctx.Context, id string) (bool, error)
	DeleteAll(dbc dbctx.Context) error
}

type TaskStore interface {
	ExistsByID(dbc dbctx.Context, id string) (bool, error)
	Save(dbc dbctx.Context, task *domain.Task) (bool, error)
	FindByID(dbc dbctx.Context, id string) (*domain.Task, error)
	FindAll(dbc dbctx.Context) ([]*domain.Task, error)
	DeleteByID(dbc dbctx.Context, id string) (bool, error)
	DeleteAll(dbc dbctx.Context) error
}

type AppointmentStore interface {
	ExistsByID(dbc dbctx.Context, id string) (bool, error)
	Save(dbc dbctx.Context, appointment *domain.Appointment) (bool, error)
	FindByID(dbc dbctx.Context, id string) (*domain.Appointment, error)
	FindAll(dbc dbctx.Context) ([]*domain.Appointment, error)
	DeleteByID(dbc dbctx.Context, id string) (bool, error)
	DeleteAll(dbc dbctx.Context) error
}
