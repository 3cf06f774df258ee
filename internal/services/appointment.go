package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/store"
)

// AppointmentService manages Appointment aggregates with the same contract
// as ContactService.
type AppointmentService interface {
	Add(dbc dbctx.Context, appointment *domain.Appointment) (bool, error)
	Delete(dbc dbctx.Context, appointmentID string) (bool, error)
	Update(dbc dbctx.Context, appointmentID string, date time.Time, description string) (bool, error)
	GetAll(dbc dbctx.Context) ([]*domain.Appointment, error)
	GetByID(dbc dbctx.Context, appointmentID string) (*domain.Appointment, error)
	ClearAll(dbc dbctx.Context) error
}

type appointmentService struct {
	store store.AppointmentStore
	log   *logger.Logger
}

var appointmentRegistry registry[AppointmentService]

// NewAppointmentService constructs the managed instance, migrating any legacy
// transient data before publishing the new reference.
func NewAppointmentService(st store.AppointmentStore, log *logger.Logger) (AppointmentService, error) {
	svc := &appointmentService{store: st, log: log.With("service", "AppointmentService")}
	replacedManaged, err := appointmentRegistry.register(svc, false, func(previous AppointmentService) error {
		snapshot, err := previous.GetAll(dbctx.Background())
		if err != nil {
			return fmt.Errorf("legacy appointment snapshot: %w", err)
		}
		migrated, err := migrate(dbctx.Background(), snapshot, svc.Add)
		if err != nil {
			return fmt.Errorf("legacy appointment migration: %w", err)
		}
		svc.log.Info("Migrated legacy appointments into managed store", "count", migrated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replacedManaged {
		svc.log.Warn("Replacing an already-managed AppointmentService; no data migrated")
	}
	return svc, nil
}

// AppointmentServiceInstance returns the current process-wide
// AppointmentService, lazily creating a transient-backed one for pre-wiring
// callers.
func AppointmentServiceInstance() AppointmentService {
	return appointmentRegistry.instance(func() AppointmentService {
		return &appointmentService{
			store: store.NewMemoryAppointmentStore(),
			log:   logger.NewNop(),
		}
	})
}

func (as *appointmentService) Add(dbc dbctx.Context, appointment *domain.Appointment) (bool, error) {
	if appointment == nil {
		return false, fmt.Errorf("appointment must not be nil: %w", domain.ErrInvalidArgument)
	}
	exists, err := as.store.ExistsByID(dbc, appointment.ID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	created, err := as.store.Save(dbc, appointment)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			as.log.Debug("Duplicate appointment detected at save", "appointmentId", appointment.ID())
			return false, nil
		}
		return false, err
	}
	return created, nil
}

func (as *appointmentService) Delete(dbc dbctx.Context, appointmentID string) (bool, error) {
	if err := domain.NotBlank(appointmentID, "appointmentId"); err != nil {
		return false, err
	}
	return as.store.DeleteByID(dbc, strings.TrimSpace(appointmentID))
}

func (as *appointmentService) Update(dbc dbctx.Context, appointmentID string, date time.Time, description string) (bool, error) {
	if err := domain.NotBlank(appointmentID, "appointmentId"); err != nil {
		return false, err
	}
	existing, err := as.store.FindByID(dbc, strings.TrimSpace(appointmentID))
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := existing.Update(date, description); err != nil {
		return false, err
	}
	if _, err := as.store.Save(dbc, existing); err != nil {
		return false, err
	}
	return true, nil
}

func (as *appointmentService) GetAll(dbc dbctx.Context) ([]*domain.Appointment, error) {
	return as.store.FindAll(dbc)
}

func (as *appointmentService) GetByID(dbc dbctx.Context, appointmentID string) (*domain.Appointment, error) {
	if err := domain.NotBlank(appointmentID, "appointmentId"); err != nil {
		return nil, err
	}
	return as.store.FindByID(dbc, strings.TrimSpace(appointmentID))
}

func (as *appointmentService) ClearAll(dbc dbctx.Context) error {
	return as.store.DeleteAll(dbc)
}
