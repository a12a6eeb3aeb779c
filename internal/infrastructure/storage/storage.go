package storage

import (
	"context"
	"fmt"
	"strings"

	"churchdata/internal/app/server/config"
	"churchdata/internal/domain/admin"
	"churchdata/internal/domain/member"
	"churchdata/internal/domain/schema"
	"churchdata/internal/infrastructure/migration"
	"churchdata/internal/infrastructure/storage/postgres"
	"churchdata/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Storage набор репозиториев поверх выбранной базы
type Storage struct {
	Driver  string
	Members member.Repository
	Schemas schema.Repository
	Admins  admin.Repository

	ping  func(ctx context.Context) error
	close func() error
}

// Driver определяет бэкенд по схеме DATABASE_URI и возвращает DSN для него
func Driver(databaseURI string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURI, "postgres://"), strings.HasPrefix(databaseURI, "postgresql://"):
		return DriverPostgres, databaseURI, nil
	case strings.HasPrefix(databaseURI, "sqlite://"):
		path := strings.TrimPrefix(databaseURI, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite path is empty in %q", databaseURI)
		}
		return DriverSQLite, path, nil
	default:
		return "", "", fmt.Errorf("unsupported database uri scheme in %q", databaseURI)
	}
}

// Open подключается к базе. Для Postgres перед открытием пула применяются миграции.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	driver, dsn, err := Driver(cfg.DB.DatabaseURI)
	if err != nil {
		return nil, err
	}
	log = log.With("component", "storage", "driver", driver)

	switch driver {
	case DriverPostgres:
		mg := migration.NewMigration(cfg, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}

		pg, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		log.Info("storage opened")
		return &Storage{
			Driver:  driver,
			Members: postgres.NewMemberRepository(pg.Pool(), log),
			Schemas: postgres.NewSchemaRepository(pg.Pool(), log),
			Admins:  postgres.NewAdminRepository(pg.Pool(), log),
			ping:    pg.Ping,
			close:   pg.Close,
		}, nil

	default:
		lite, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		log.Info("storage opened", "path", dsn)
		return &Storage{
			Driver:  driver,
			Members: sqlite.NewMemberRepository(lite.DB(), log),
			Schemas: sqlite.NewSchemaRepository(lite.DB(), log),
			Admins:  sqlite.NewAdminRepository(lite.DB(), log),
			ping:    lite.Ping,
			close:   lite.Close,
		}, nil
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	return s.close()
}
