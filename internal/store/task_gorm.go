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

// gormTaskStore is the durable TaskStore.
type gormTaskStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGormTaskStore(db *gorm.DB, baseLog *logger.Logger) TaskStore {
	return &gormTaskStore{db: db, log: baseLog.With("store", "GormTaskStore")}
}

func (s *gormTaskStore) handle(dbc dbctx.Context) *gorm.DB {
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

func (s *gormTaskStore) ExistsByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("taskId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var count int64
	if err := s.handle(dbc).Model(&types.TaskRow{}).
		Where("task_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormTaskStore) Save(dbc dbctx.Context, task *domain.Task) (bool, error) {
	if task == nil {
		return false, fmt.Errorf("task must not be nil: %w", domain.ErrInvalidArgument)
	}
	row := taskToRow(task)
	h := s.handle(dbc)

	res := h.Model(&types.TaskRow{}).
		Where("task_id = ?", row.TaskID).
		Updates(map[string]interface{}{
			"name":        row.Name,
			"description": row.Description,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	if err := h.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("task %q already persisted: %w", row.TaskID, domain.ErrDuplicateID)
		}
		return false, err
	}
	return true, nil
}

func (s *gormTaskStore) FindByID(dbc dbctx.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, fmt.Errorf("taskId must not be empty: %w", domain.ErrInvalidArgument)
	}
	var row types.TaskRow
	err := s.handle(dbc).First(&row, "task_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rowToTask(&row)
}

func (s *gormTaskStore) FindAll(dbc dbctx.Context) ([]*domain.Task, error) {
	var rows []*types.TaskRow
	if err := s.handle(dbc).Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := rowToTask(row)
		if err != nil {
			return nil, err
		}
		results = append(results, task)
	}
	return results, nil
}

func (s *gormTaskStore) DeleteByID(dbc dbctx.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("taskId must not be empty: %w", domain.ErrInvalidArgument)
	}
	res := s.handle(dbc).Delete(&types.TaskRow{}, "task_id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormTaskStore) DeleteAll(dbc dbctx.Context) error {
	return s.handle(dbc).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&types.TaskRow{}).Error
}

func taskToRow(task *domain.Task) *types.TaskRow {
	if task == nil {
		return nil
	}
	return &types.TaskRow{
		TaskID:      task.ID(),
		Name:        task.Name(),
		Description: task.Description(),
	}
}

func rowToTask(row *types.TaskRow) (*domain.Task, error) {
	if row == nil {
		return nil, nil
	}
	task, err := domain.NewTask(row.TaskID, row.Name, row.Description)
	if err != nil {
		return nil, fmt.Errorf("task row %q failed domain validation: %w", row.TaskID, err)
	}
	return task, nil
}
