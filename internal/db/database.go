package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/contactapp/backend/internal/pkg/env"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/types"
)

// Service owns the gorm handle. DB_DRIVER selects postgres or sqlite; sqlite
// is the default so a checkout runs without any infrastructure.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DatabaseService")

	driver := env.Get("DB_DRIVER", "sqlite", log)

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		host := env.Get("POSTGRES_HOST", "localhost", log)
		port := env.Get("POSTGRES_PORT", "5432", log)
		user := env.Get("POSTGRES_USER", "postgres", log)
		password := env.Get("POSTGRES_PASSWORD", "", log)
		name := env.Get("POSTGRES_NAME", "contactapp", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	case "sqlite":
		path := env.Get("SQLITE_PATH", "contactapp.db", log)
		dialector = sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	log.Info("Connecting to database...", "driver", driver)
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the store layer depends on.
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	return &Service{db: gormDB, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.ContactRow{},
		&types.TaskRow{},
		&types.AppointmentRow{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
