package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/infrastructure/persistence/mappers"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/db"
)

type AlertRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AlertMapper
}

func NewAlertRepository(gormDB *gorm.DB) alert.Repository {
	return &AlertRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewAlertMapper(),
	}
}

// Save upserts by alert ID. Ingestion replays overlapping pages, so an
// existing row has its mutable fields refreshed rather than erroring.
func (r *AlertRepositoryImpl) Save(ctx context.Context, entity *alert.Alert) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map alert entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"alert_type", "client_id", "client_name",
			"device_id", "device_name", "agent_name", "agent_hostname",
			"message", "timestamp", "resolved", "fields", "updated_at",
		}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}

	return nil
}

func (r *AlertRepositoryImpl) Update(ctx context.Context, entity *alert.Alert) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map alert entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Model(&models.AlertModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "ticket_id").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update alert: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return alert.ErrAlertNotFound
	}

	return nil
}

// AttachTicket is the only write path for ticket_id. The IS NULL guard makes
// the column a compare-and-set: a second attach matches zero rows.
func (r *AlertRepositoryImpl) AttachTicket(ctx context.Context, alertID string, ticketID int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Model(&models.AlertModel{}).
		Where("id = ? AND ticket_id IS NULL", alertID).
		Update("ticket_id", ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to attach ticket to alert: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return alert.ErrAlertAlreadyLinked
	}

	return nil
}

func (r *AlertRepositoryImpl) FindByID(ctx context.Context, id string) (*alert.Alert, error) {
	var model models.AlertModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, alert.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map alert model to entity: %w", err)
	}

	return entity, nil
}

func (r *AlertRepositoryImpl) List(ctx context.Context) ([]*alert.Alert, error) {
	var modelList []*models.AlertModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Order("timestamp DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map alert models to entities: %w", err)
	}

	return entities, nil
}

func (r *AlertRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.AlertModel{}).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	return total, nil
}

func (r *AlertRepositoryImpl) CountUnresolved(ctx context.Context) (int64, error) {
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.AlertModel{}).
		Where("resolved = ?", false).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count unresolved alerts: %w", err)
	}

	return total, nil
}
