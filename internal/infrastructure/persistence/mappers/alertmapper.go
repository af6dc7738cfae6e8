package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/mapper"
)

type AlertMapper interface {
	ToEntity(model *models.AlertModel) (*alert.Alert, error)
	ToModel(entity *alert.Alert) (*models.AlertModel, error)
	ToEntities(models []*models.AlertModel) ([]*alert.Alert, error)
}

type AlertMapperImpl struct{}

func NewAlertMapper() AlertMapper {
	return &AlertMapperImpl{}
}

func (m *AlertMapperImpl) ToEntity(model *models.AlertModel) (*alert.Alert, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := alert.ReconstructAlert(
		model.ID,
		model.AlertType,
		model.ClientID,
		model.ClientName,
		model.DeviceID,
		model.DeviceName,
		model.AgentName,
		model.AgentHostname,
		model.Message,
		time.UnixMilli(model.Timestamp),
		model.Resolved,
		model.TicketID,
		string(model.Fields),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct alert entity: %w", err)
	}

	return entity, nil
}

func (m *AlertMapperImpl) ToModel(entity *alert.Alert) (*models.AlertModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.AlertModel{
		ID:            entity.ID(),
		AlertType:     entity.Type(),
		ClientID:      entity.ClientID(),
		ClientName:    entity.ClientName(),
		DeviceID:      entity.DeviceID(),
		DeviceName:    entity.DeviceName(),
		AgentName:     entity.AgentName(),
		AgentHostname: entity.AgentHostname(),
		Message:       entity.Message(),
		Timestamp:     entity.Timestamp().UnixMilli(),
		Resolved:      entity.Resolved(),
		TicketID:      entity.TicketID(),
		CreatedAt:     entity.CreatedAt().UnixMilli(),
		UpdatedAt:     entity.UpdatedAt().UnixMilli(),
	}

	if raw := entity.RawFields(); raw != "" {
		model.Fields = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *AlertMapperImpl) ToEntities(modelList []*models.AlertModel) ([]*alert.Alert, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AlertModel) string { return model.ID })
}
