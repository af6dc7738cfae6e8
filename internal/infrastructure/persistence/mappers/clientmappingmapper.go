package mappers

import (
	"fmt"
	"time"

	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/infrastructure/persistence/models"
	"slidebridge/internal/shared/mapper"
)

type ClientMappingMapper interface {
	ToEntity(model *models.ClientMappingModel) (*mapping.ClientMapping, error)
	ToModel(entity *mapping.ClientMapping) (*models.ClientMappingModel, error)
	ToEntities(models []*models.ClientMappingModel) ([]*mapping.ClientMapping, error)
}

type ClientMappingMapperImpl struct{}

func NewClientMappingMapper() ClientMappingMapper {
	return &ClientMappingMapperImpl{}
}

func (m *ClientMappingMapperImpl) ToEntity(model *models.ClientMappingModel) (*mapping.ClientMapping, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := mapping.ReconstructClientMapping(
		model.ID,
		model.SlideClientID,
		model.SlideClientName,
		model.ConnectWiseID,
		model.ConnectWiseName,
		time.UnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client mapping entity: %w", err)
	}

	return entity, nil
}

func (m *ClientMappingMapperImpl) ToModel(entity *mapping.ClientMapping) (*models.ClientMappingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ClientMappingModel{
		ID:              entity.ID(),
		SlideClientID:   entity.SlideClientID(),
		SlideClientName: entity.SlideClientName(),
		ConnectWiseID:   entity.ConnectWiseID(),
		ConnectWiseName: entity.ConnectWiseName(),
		CreatedAt:       entity.CreatedAt().UnixMilli(),
	}, nil
}

func (m *ClientMappingMapperImpl) ToEntities(modelList []*models.ClientMappingModel) ([]*mapping.ClientMapping, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ClientMappingModel) uint { return model.ID })
}
