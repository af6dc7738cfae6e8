package mappers

import (
	"fmt"
	"time"

	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/mapper"
)

type TicketLinkMapper interface {
	ToEntity(model *models.TicketLinkModel) (*ticketlink.TicketLink, error)
	ToModel(entity *ticketlink.TicketLink) (*models.TicketLinkModel, error)
	ToEntities(models []*models.TicketLinkModel) ([]*ticketlink.TicketLink, error)
}

type TicketLinkMapperImpl struct{}

func NewTicketLinkMapper() TicketLinkMapper {
	return &TicketLinkMapperImpl{}
}

func (m *TicketLinkMapperImpl) ToEntity(model *models.TicketLinkModel) (*ticketlink.TicketLink, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticketlink.ReconstructTicketLink(
		model.ID,
		model.AlertID,
		model.TicketID,
		time.UnixMilli(model.CreatedAt),
		milliToTimePtr(model.ClosedAt),
		model.TicketStatus,
		model.TicketClosed,
		model.TicketClosedFlag,
		model.TicketStatusError,
		model.NeedsSync,
		milliToTimePtr(model.CheckedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket link entity: %w", err)
	}

	return entity, nil
}

func (m *TicketLinkMapperImpl) ToModel(entity *ticketlink.TicketLink) (*models.TicketLinkModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketLinkModel{
		ID:                entity.ID(),
		AlertID:           entity.AlertID(),
		TicketID:          entity.TicketID(),
		TicketStatus:      entity.TicketStatus(),
		TicketClosed:      entity.TicketClosed(),
		TicketClosedFlag:  entity.TicketClosedFlag(),
		TicketStatusError: entity.TicketStatusError(),
		NeedsSync:         entity.NeedsSync(),
		CheckedAt:         timePtrToMilli(entity.CheckedAt()),
		ClosedAt:          timePtrToMilli(entity.ClosedAt()),
		CreatedAt:         entity.CreatedAt().UnixMilli(),
	}, nil
}

func (m *TicketLinkMapperImpl) ToEntities(modelList []*models.TicketLinkModel) ([]*ticketlink.TicketLink, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.TicketLinkModel) uint { return model.ID })
}

func milliToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
