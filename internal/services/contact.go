package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/store"
)

// ContactService manages Contact aggregates against whichever ContactStore is
// currently registered. Duplicate and not-found outcomes are boolean returns;
// only invalid input and infrastructure failures surface as errors.
type ContactService interface {
	Add(dbc dbctx.Context, contact *domain.Contact) (bool, error)
	Delete(dbc dbctx.Context, contactID string) (bool, error)
	Update(dbc dbctx.Context, contactID, firstName, lastName, phone, address string) (bool, error)
	GetAll(dbc dbctx.Context) ([]*domain.Contact, error)
	GetByID(dbc dbctx.Context, contactID string) (*domain.Contact, error)
	ClearAll(dbc dbctx.Context) error
}

type contactService struct {
	store store.ContactStore
	log   *logger.Logger
}

var contactRegistry registry[ContactService]

// NewContactService constructs the managed instance and publishes it as the
// process-wide current ContactService. Data held by a previously active
// legacy instance is migrated into st before the reference is swapped.
func NewContactService(st store.ContactStore, log *logger.Logger) (ContactService, error) {
	svc := &contactService{store: st, log: log.With("service", "ContactService")}
	replacedManaged, err := contactRegistry.register(svc, false, func(previous ContactService) error {
		snapshot, err := previous.GetAll(dbctx.Background())
		if err != nil {
			return fmt.Errorf("legacy contact snapshot: %w", err)
		}
		migrated, err := migrate(dbctx.Background(), snapshot, svc.Add)
		if err != nil {
			return fmt.Errorf("legacy contact migration: %w", err)
		}
		svc.log.Info("Migrated legacy contacts into managed store", "count", migrated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replacedManaged {
		svc.log.Warn("Replacing an already-managed ContactService; no data migrated")
	}
	return svc, nil
}

// ContactServiceInstance returns the current process-wide ContactService.
// Callers that run before the managed instance exists get a lazily created
// service backed by the transient in-memory store; once the managed instance
// registers, both access paths share it.
func ContactServiceInstance() ContactService {
	return contactRegistry.instance(func() ContactService {
		return &contactService{
			store: store.NewMemoryContactStore(),
			log:   logger.NewNop(),
		}
	})
}

func (cs *contactService) Add(dbc dbctx.Context, contact *domain.Contact) (bool, error) {
	if contact == nil {
		return false, fmt.Errorf("contact must not be nil: %w", domain.ErrInvalidArgument)
	}
	exists, err := cs.store.ExistsByID(dbc, contact.ID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	created, err := cs.store.Save(dbc, contact)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			// Insert race the existence check missed; same outcome as exists.
			cs.log.Debug("Duplicate contact detected at save", "contactId", contact.ID())
			return false, nil
		}
		return false, err
	}
	return created, nil
}

func (cs *contactService) Delete(dbc dbctx.Context, contactID string) (bool, error) {
	if err := domain.NotBlank(contactID, "contactId"); err != nil {
		return false, err
	}
	return cs.store.DeleteByID(dbc, strings.TrimSpace(contactID))
}

func (cs *contactService) Update(dbc dbctx.Context, contactID, firstName, lastName, phone, address string) (bool, error) {
	if err := domain.NotBlank(contactID, "contactId"); err != nil {
		return false, err
	}
	existing, err := cs.store.FindByID(dbc, strings.TrimSpace(contactID))
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := existing.Update(firstName, lastName, phone, address); err != nil {
		return false, err
	}
	if _, err := cs.store.Save(dbc, existing); err != nil {
		return false, err
	}
	return true, nil
}

func (cs *contactService) GetAll(dbc dbctx.Context) ([]*domain.Contact, error) {
	return cs.store.FindAll(dbc)
}

func (cs *contactService) GetByID(dbc dbctx.Context, contactID string) (*domain.Contact, error) {
	if err := domain.NotBlank(contactID, "contactId"); err != nil {
		return nil, err
	}
	return cs.store.FindByID(dbc, strings.TrimSpace(contactID))
}

// ClearAll wipes the backing store. Reserved for test isolation.
func (cs *contactService) ClearAll(dbc dbctx.Context) error {
	return cs.store.DeleteAll(dbc)
}
