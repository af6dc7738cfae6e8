package usecases

import (
	"context"
	"errors"
	"time"

	"slidebridge/internal/domain/mapping"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type CreateMappingCommand struct {
	SlideClientID   string
	SlideClientName string
	ConnectWiseID   int
	ConnectWiseName string
}

type CreateMappingResult struct {
	ID              uint      `json:"id"`
	SlideClientID   string    `json:"slideClientId"`
	SlideClientName string    `json:"slideClientName"`
	ConnectWiseID   int       `json:"connectWiseId"`
	ConnectWiseName string    `json:"connectWiseName"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateMappingUseCase struct {
	mappingRepo mapping.Repository
	logger      logger.Interface
}

func NewCreateMappingUseCase(
	mappingRepo mapping.Repository,
	logger logger.Interface,
) *CreateMappingUseCase {
	return &CreateMappingUseCase{
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *CreateMappingUseCase) Execute(ctx context.Context, cmd CreateMappingCommand) (*CreateMappingResult, error) {
	newMapping, err := mapping.NewClientMapping(
		cmd.SlideClientID,
		cmd.SlideClientName,
		cmd.ConnectWiseID,
		cmd.ConnectWiseName,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.mappingRepo.Save(ctx, newMapping); err != nil {
		if errors.Is(err, mapping.ErrMappingExists) {
			return nil, apperrors.NewConflictError("mapping already exists for this slide client")
		}
		uc.logger.Errorw("failed to save mapping", "slide_client_id", cmd.SlideClientID, "error", err)
		return nil, err
	}

	uc.logger.Infow("mapping created",
		"slide_client_id", newMapping.SlideClientID(),
		"slide_client_name", newMapping.SlideClientName(),
		"connectwise_id", newMapping.ConnectWiseID(),
	)

	return &CreateMappingResult{
		ID:              newMapping.ID(),
		SlideClientID:   newMapping.SlideClientID(),
		SlideClientName: newMapping.SlideClientName(),
		ConnectWiseID:   newMapping.ConnectWiseID(),
		ConnectWiseName: newMapping.ConnectWiseName(),
		CreatedAt:       newMapping.CreatedAt(),
	}, nil
}
