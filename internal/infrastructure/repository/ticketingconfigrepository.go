package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/infrastructure/persistence/mappers"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/db"
)

type TicketingConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketingConfigMapper
}

func NewTicketingConfigRepository(gormDB *gorm.DB) ticketing.ConfigRepository {
	return &TicketingConfigRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTicketingConfigMapper(),
	}
}

func (r *TicketingConfigRepositoryImpl) Get(ctx context.Context) (*ticketing.Config, error) {
	var model models.TicketingConfigModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticketing config: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Save replaces the singleton row wholesale.
func (r *TicketingConfigRepositoryImpl) Save(ctx context.Context, c *ticketing.Config) error {
	model := r.mapper.ToModel(c)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticketing config: %w", err)
	}

	return nil
}
