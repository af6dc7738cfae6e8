package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/infrastructure/persistence/mappers"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/db"
	apperrors "slidebridge/internal/shared/errors"
)

type TicketLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketLinkMapper
}

func NewTicketLinkRepository(gormDB *gorm.DB) ticketlink.Repository {
	return &TicketLinkRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewTicketLinkMapper(),
	}
}

func (r *TicketLinkRepositoryImpl) Save(ctx context.Context, entity *ticketlink.TicketLink) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket link entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return ticketlink.ErrLinkExists
		}
		return fmt.Errorf("failed to create ticket link: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket link ID: %w", err)
	}

	return nil
}

func (r *TicketLinkRepositoryImpl) Update(ctx context.Context, entity *ticketlink.TicketLink) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket link entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Model(&models.TicketLinkModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "alert_id", "ticket_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket link: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ticketlink.ErrLinkNotFound
	}

	return nil
}

// RefreshRemoteStatus writes the cached remote fields through a column list
// that excludes closed_at, guarded by closed_at IS NULL. A link snapshot that
// went stale behind an explicit close matches zero rows instead of reverting
// the close.
func (r *TicketLinkRepositoryImpl) RefreshRemoteStatus(ctx context.Context, entity *ticketlink.TicketLink) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket link entity to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.WithContext(ctx).
		Model(&models.TicketLinkModel{}).
		Where("id = ? AND closed_at IS NULL", model.ID).
		Select("ticket_status", "ticket_closed", "ticket_closed_flag",
			"ticket_status_error", "needs_sync", "checked_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to refresh ticket link status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ticketlink.ErrLinkAlreadyClosed
	}

	return nil
}

func (r *TicketLinkRepositoryImpl) FindByAlertID(ctx context.Context, alertID string) (*ticketlink.TicketLink, error) {
	var model models.TicketLinkModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("alert_id = ?", alertID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticketlink.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get ticket link: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket link model to entity: %w", err)
	}

	return entity, nil
}

func (r *TicketLinkRepositoryImpl) ListOpen(ctx context.Context) ([]*ticketlink.TicketLink, error) {
	var modelList []*models.TicketLinkModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Where("closed_at IS NULL").
		Order("created_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list open ticket links: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket link models to entities: %w", err)
	}

	return entities, nil
}

func (r *TicketLinkRepositoryImpl) List(ctx context.Context, limit int) ([]*ticketlink.TicketLink, error) {
	var modelList []*models.TicketLinkModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket links: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket link models to entities: %w", err)
	}

	return entities, nil
}

func (r *TicketLinkRepositoryImpl) CountOpen(ctx context.Context) (int64, error) {
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).
		Model(&models.TicketLinkModel{}).
		Where("closed_at IS NULL").
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count open ticket links: %w", err)
	}

	return total, nil
}
