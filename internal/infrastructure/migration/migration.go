package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"slidebridge/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Manager runs database migrations with an environment-appropriate strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy for the environment: gorm AutoMigrate for
// development, goose SQL scripts elsewhere.
func NewManager(environment, driver string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case "development", "":
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(gooseDialect(driver))
	}

	return &Manager{
		strategy: strategy,
		logger:   log.Named("migration"),
	}
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.Named("migration"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...any) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models),
	)

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err,
		)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName(),
	)
	return nil
}

func gooseDialect(driver string) string {
	switch strings.ToLower(driver) {
	case "mysql":
		return "mysql"
	default:
		return "sqlite3"
	}
}
