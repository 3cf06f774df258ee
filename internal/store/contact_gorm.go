package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/types"
)

// gormContactStore is the durable ContactStore. Transactionality and
// uniqueness come from the database; this layer only maps rows to aggregates
// and re-runs domain validation on every load so corrupted rows fail fast.
type gormContactStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormContactStore(db *gorm.DB, baseLog *logger.Logger) ContactStore {
	return &gormContactStore{db: db, log: baseLog.With("store", "GormContactStore")}
}

func (s *gormContactStore) handle(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = s.db
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return tx.WithContext(ctx)
}

func (s *gormContactStore) ExistsByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("contactId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var count int64
	if err := s.handle(dbc).Model(&types.ContactRow{}).
		Where("contact_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormContactStore) Save(dbc dbctx.Context, contact *domain.Contact) (bool, error) {
	if contact == nil {
		return false, fmt.Errorf("contact must not be nil: %w", domain.ErrInvalidArgument)
	}
	row := contactToRow(contact)
	h := s.handle(dbc)

	res := h.Model(&types.ContactRow{}).
		Where("contact_id = ?", row.ContactID).
		Updates(map[string]interface{}{
			"first_name": row.FirstName,
			"last_name":  row.LastName,
			"phone":      row.Phone,
			"address":    row.Address,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := h.Create(row).Error; err != nil {
		// The existence window between the update probe and this insert is
		// closed by the primary-key constraint; the loser reports duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("contact %q already persisted: %w", row.ContactID, domain.ErrDuplicateID)
		}
		return false, err
	}
	return true, nil
}

func (s *gormContactStore) FindByID(dbc dbctx.Context, id string) (*domain.Contact, error) {
	if id == "" {
		return nil, fmt.Errorf("contactId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var row types.ContactRow
	err := s.handle(dbc).First(&row, "contact_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToContact(&row)
}

func (s *gormContactStore) FindAll(dbc dbctx.Context) ([]*domain.Contact, error) {
	var rows []*types.ContactRow
	if err := s.handle(dbc).Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]*domain.Contact, 0, len(rows))
	for _, row := range rows {
		contact, err := rowToContact(row)
		if err != nil {
			return nil, err
		}
		results = append(results, contact)
	}
	return results, nil
}

func (s *gormContactStore) DeleteByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("contactId must not be empty: %w", domain.ErrInvalidArgument)
	}
	res := s.handle(dbc).Delete(&types.ContactRow{}, "contact_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormContactStore) DeleteAll(dbc dbctx.Context) error {
	return s.handle(dbc).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.ContactRow{}).Error
}

func contactToRow(contact *domain.Contact) *types.ContactRow {
	if contact == nil {
		return nil
	}
	return &types.ContactRow{
		ContactID: contact.ID(),
		FirstName: contact.FirstName(),
		LastName:  contact.LastName(),
		Phone:     contact.Phone(),
		Address:   contact.Address(),
	}
}

// rowToContact re-runs full domain construction so rows inserted outside the
// service surface fail loudly instead of propagating silently.
func rowToContact(row *types.ContactRow) (*domain.Contact, error) {
	if row == nil {
		return nil, nil
	}
	contact, err := domain.NewContact(row.ContactID, row.FirstName, row.LastName, row.Phone, row.Address)
	if err != nil {
		return nil, fmt.Errorf("contact row %q failed domain validation: %w", row.ContactID, err)
	}
	return contact, nil
}
