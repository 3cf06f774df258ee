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

// TaskService manages Task aggregates with the same contract as
// ContactService.
type TaskService interface {
	Add(dbc dbctx.Context, task *domain.Task) (bool, error)
	Delete(dbc dbctx.Context, taskID string) (bool, error)
	Update(dbc dbctx.Context, taskID, name, description string) (bool, error)
	GetAll(dbc dbctx.Context) ([]*domain.Task, error)
	GetByID(dbc dbctx.Context, taskID string) (*domain.Task, error)
	ClearAll(dbc dbctx.Context) error
}

type taskService struct {
	store store.TaskStore
	log   *logger.Logger
}

var taskRegistry registry[TaskService]

// NewTaskService constructs the managed instance, migrating any legacy
// transient data before publishing the new reference.
func NewTaskService(st store.TaskStore, log *logger.Logger) (TaskService, error) {
	svc := &taskService{store: st, log: log.With("service", "TaskService")}
	replacedManaged, err := taskRegistry.register(svc, false, func(previous TaskService) error {
		snapshot, err := previous.GetAll(dbctx.Background())
		if err != nil {
			return fmt.Errorf("legacy task snapshot: %w", err)
		}
		migrated, err := migrate(dbctx.Background(), snapshot, svc.Add)
		if err != nil {
			return fmt.Errorf("legacy task migration: %w", err)
		}
		svc.log.Info("Migrated legacy tasks into managed store", "count", migrated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if replacedManaged {
		svc.log.Warn("Replacing an already-managed TaskService; no data migrated")
	}
	return svc, nil
}

// TaskServiceInstance returns the current process-wide TaskService, lazily
// creating a transient-backed one for pre-wiring callers.
func TaskServiceInstance() TaskService {
	return taskRegistry.instance(func() TaskService {
		return &taskService{
			store: store.NewMemoryTaskStore(),
			log:   logger.NewNop(),
		}
	})
}

func (ts *taskService) Add(dbc dbctx.Context, task *domain.Task) (bool, error) {
	if task == nil {
		return false, fmt.Errorf("task must not be nil: %w", domain.ErrInvalidArgument)
	}
	exists, err := ts.store.ExistsByID(dbc, task.ID())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	created, err := ts.store.Save(dbc, task)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			ts.log.Debug("Duplicate task detected at save", "taskId", task.ID())
			return false, nil
		}
		return false, err
	}
	return created, nil
}

func (ts *taskService) Delete(dbc dbctx.Context, taskID string) (bool, error) {
	if err := domain.NotBlank(taskID, "taskId"); err != nil {
		return false, err
	}
	return ts.store.DeleteByID(dbc, strings.TrimSpace(taskID))
}

func (ts *taskService) Update(dbc dbctx.Context, taskID, name, description string) (bool, error) {
	if err := domain.NotBlank(taskID, "taskId"); err != nil {
		return false, err
	}
	existing, err := ts.store.FindByID(dbc, strings.TrimSpace(taskID))
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := existing.Update(name, description); err != nil {
		return false, err
	}
	if _, err := ts.store.Save(dbc, existing); err != nil {
		return false, err
	}
	return true, nil
}

func (ts *taskService) GetAll(dbc dbctx.Context) ([]*domain.Task, error) {
	return ts.store.FindAll(dbc)
}

func (ts *taskService) GetByID(dbc dbctx.Context, taskID string) (*domain.Task, error) {
	if err := domain.NotBlank(taskID, "taskId"); err != nil {
		return nil, err
	}
	return ts.store.FindByID(dbc, strings.TrimSpace(taskID))
}

func (ts *taskService) ClearAll(dbc dbctx.Context) error {
	return ts.store.DeleteAll(dbc)
}
