package mappers

import (
	"time"

	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/infrastructure/persistence/models"
)

// ticketingConfigRowID pins the singleton configuration row.
const ticketingConfigRowID = 1

type TicketingConfigMapper interface {
	ToEntity(model *models.TicketingConfigModel) *ticketing.Config
	ToModel(entity *ticketing.Config) *models.TicketingConfigModel
}

type TicketingConfigMapperImpl struct{}

func NewTicketingConfigMapper() TicketingConfigMapper {
	return &TicketingConfigMapperImpl{}
}

func (m *TicketingConfigMapperImpl) ToEntity(model *models.TicketingConfigModel) *ticketing.Config {
	if model == nil {
		return nil
	}

	return &ticketing.Config{
		BoardID:         model.BoardID,
		BoardName:       model.BoardName,
		StatusID:        model.StatusID,
		StatusName:      model.StatusName,
		PriorityID:      model.PriorityID,
		PriorityName:    model.PriorityName,
		TypeID:          model.TypeID,
		TypeName:        model.TypeName,
		SummaryTemplate: model.SummaryTemplate,
		BodyTemplate:    model.BodyTemplate,
		AutoAssignTech:  model.AutoAssignTech,
		TechnicianID:    model.TechnicianID,
		TechnicianName:  model.TechnicianName,
		UpdatedAt:       time.UnixMilli(model.UpdatedAt),
	}
}

func (m *TicketingConfigMapperImpl) ToModel(entity *ticketing.Config) *models.TicketingConfigModel {
	if entity == nil {
		return nil
	}

	return &models.TicketingConfigModel{
		ID:              ticketingConfigRowID,
		BoardID:         entity.BoardID,
		BoardName:       entity.BoardName,
		StatusID:        entity.StatusID,
		StatusName:      entity.StatusName,
		PriorityID:      entity.PriorityID,
		PriorityName:    entity.PriorityName,
		TypeID:          entity.TypeID,
		TypeName:        entity.TypeName,
		SummaryTemplate: entity.SummaryTemplate,
		BodyTemplate:    entity.BodyTemplate,
		AutoAssignTech:  entity.AutoAssignTech,
		TechnicianID:    entity.TechnicianID,
		TechnicianName:  entity.TechnicianName,
		UpdatedAt:       entity.UpdatedAt.UnixMilli(),
	}
}
