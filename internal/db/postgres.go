package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/pkg/envutil"
	"github.com/edulab/booklib-backend/internal/pkg/idalloc"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := envutil.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := envutil.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := envutil.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := envutil.GetEnv("POSTGRES_NAME", "booklib", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		// book.user_id stays a soft reference; no FK is ever created.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&types.Person{},
		&types.Book{},
		&types.IDSequence{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return SeedSequence(s.db)
}

// SeedSequence makes sure the single id_sequence row exists before the first
// block allocation.
func SeedSequence(gormDB *gorm.DB) error {
	seed := types.IDSequence{ID: idalloc.SeqRowID, NextVal: 0}
	return gormDB.
		Where(types.IDSequence{ID: idalloc.SeqRowID}).
		FirstOrCreate(&seed).Error
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
