package usecases

import (
	"context"
	"errors"

	"slidebridge/internal/domain/mapping"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type DeleteMappingCommand struct {
	SlideClientID string
}

// DeleteMappingUseCase removes a mapping. Existing ticket links and alerts
// are untouched; only future ticket creation for this client is affected.
type DeleteMappingUseCase struct {
	mappingRepo mapping.Repository
	logger      logger.Interface
}

func NewDeleteMappingUseCase(
	mappingRepo mapping.Repository,
	logger logger.Interface,
) *DeleteMappingUseCase {
	return &DeleteMappingUseCase{
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *DeleteMappingUseCase) Execute(ctx context.Context, cmd DeleteMappingCommand) error {
	if cmd.SlideClientID == "" {
		return apperrors.NewValidationError("slide client ID is required")
	}

	if err := uc.mappingRepo.Delete(ctx, cmd.SlideClientID); err != nil {
		if errors.Is(err, mapping.ErrMappingNotFound) {
			return apperrors.NewNotFoundError("mapping not found")
		}
		uc.logger.Errorw("failed to delete mapping", "slide_client_id", cmd.SlideClientID, "error", err)
		return err
	}

	uc.logger.Infow("mapping deleted", "slide_client_id", cmd.SlideClientID)
	return nil
}
