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

// gormAppointmentStore is the durable AppointmentStore. Loads go through the
// reconstitute path so appointments whose date has passed since insertion
// still come back instead of tripping the not-in-the-past rule.
type gormAppointmentStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormAppointmentStore(db *gorm.DB, baseLog *logger.Logger) AppointmentStore {
	return &gormAppointmentStore{db: db, log: baseLog.With("store", "GormAppointmentStore")}
}

func (s *gormAppointmentStore) handle(dbc dbctx.Context) *gorm.DB {
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

func (s *gormAppointmentStore) ExistsByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("appointmentId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var count int64
	if err := s.handle(dbc).Model(&types.AppointmentRow{}).
		Where("appointment_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormAppointmentStore) Save(dbc dbctx.Context, appointment *domain.Appointment) (bool, error) {
	if appointment == nil {
		return false, fmt.Errorf("appointment must not be nil: %w", domain.ErrInvalidArgument)
	}
	row := appointmentToRow(appointment)
	h := s.handle(dbc)

	res := h.Model(&types.AppointmentRow{}).
		Where("appointment_id = ?", row.AppointmentID).
		Updates(map[string]interface{}{
			"appointment_date": row.AppointmentDate,
			"description":      row.Description,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := h.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("appointment %q already persisted: %w", row.AppointmentID, domain.ErrDuplicateID)
		}
		return false, err
	}
	return true, nil
}

func (s *gormAppointmentStore) FindByID(dbc dbctx.Context, id string) (*domain.Appointment, error) {
	if id == "" {
		return nil, fmt.Errorf("appointmentId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var row types.AppointmentRow
	err := s.handle(dbc).First(&row, "appointment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToAppointment(&row)
}

func (s *gormAppointmentStore) FindAll(dbc dbctx.Context) ([]*domain.Appointment, error) {
	var rows []*types.AppointmentRow
	if err := s.handle(dbc).Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]*domain.Appointment, 0, len(rows))
	for _, row := range rows {
		appointment, err := rowToAppointment(row)
		if err != nil {
			return nil, err
		}
		results = append(results, appointment)
	}
	return results, nil
}

func (s *gormAppointmentStore) DeleteByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("appointmentId must not be empty: %w", domain.ErrInvalidArgument)
	}
	res := s.handle(dbc).Delete(&types.AppointmentRow{}, "appointment_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormAppointmentStore) DeleteAll(dbc dbctx.Context) error {
	return s.handle(dbc).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.AppointmentRow{}).Error
}

func appointmentToRow(appointment *domain.Appointment) *types.AppointmentRow {
	if appointment == nil {
		return nil
	}
	return &types.AppointmentRow{
		AppointmentID:   appointment.ID(),
		AppointmentDate: appointment.Date(),
		Description:     appointment.Description(),
	}
}

// rowToAppointment rebuilds the aggregate through ReconstituteAppointment:
// everything except the not-past rule is re-validated.
func rowToAppointment(row *types.AppointmentRow) (*domain.Appointment, error) {
	if row == nil {
		return nil, nil
	}
	appointment, err := domain.ReconstituteAppointment(row.AppointmentID, row.AppointmentDate, row.Description)
	if err != nil {
		return nil, fmt.Errorf("appointment row %q failed domain validation: %w", row.AppointmentID, err)
	}
	return appointment, nil
}
