package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/infrastructure/persistence/mappers"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/db"
	apperrors "slidebridge/internal/shared/errors"
)

type ClientMappingRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMappingMapper
}

func NewClientMappingRepository(gormDB *gorm.DB) mapping.Repository {
	return &ClientMappingRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewClientMappingMapper(),
	}
}

func (r *ClientMappingRepositoryImpl) Save(ctx context.Context, entity *mapping.ClientMapping) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map client mapping entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return mapping.ErrMappingExists
		}
		return fmt.Errorf("failed to create client mapping: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client mapping ID: %w", err)
	}

	return nil
}

func (r *ClientMappingRepositoryImpl) Delete(ctx context.Context, slideClientID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Where("slide_client_id = ?", slideClientID).
		Delete(&models.ClientMappingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete client mapping: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return mapping.ErrMappingNotFound
	}

	return nil
}

func (r *ClientMappingRepositoryImpl) FindBySlideClientID(ctx context.Context, slideClientID string) (*mapping.ClientMapping, error) {
	var model models.ClientMappingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("slide_client_id = ?", slideClientID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mapping.ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get client mapping: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map client mapping model to entity: %w", err)
	}

	return entity, nil
}

func (r *ClientMappingRepositoryImpl) List(ctx context.Context) ([]*mapping.ClientMapping, error) {
	var modelList []*models.ClientMappingModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Order("slide_client_name ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list client mappings: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map client mapping models to entities: %w", err)
	}

	return entities, nil
}

func (r *ClientMappingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.ClientMappingModel{}).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count client mappings: %w", err)
	}

	return total, nil
}
