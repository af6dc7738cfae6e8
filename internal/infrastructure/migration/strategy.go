package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Strategy is a database migration approach.
type Strategy interface {
	Migrate(db *gorm.DB, models ...any) error
	GetName() string
}

// GormAutoMigrateStrategy derives the schema from the model structs. Suited
// to development and the sqlite single-binary deployment.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy applies version-controlled SQL scripts. Suited to production
// where schema changes need explicit review and rollback.
type GooseStrategy struct {
	dialect string
}

func NewGooseStrategy(dialect string) *GooseStrategy {
	return &GooseStrategy{dialect: dialect}
}

// NewGooseStrategyForDriver maps a database driver name to its goose dialect.
func NewGooseStrategyForDriver(driver string) *GooseStrategy {
	return NewGooseStrategy(gooseDialect(driver))
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...any) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// GetVersion returns the current goose migration version.
func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}
