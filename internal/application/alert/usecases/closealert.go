package usecases

import (
	"context"
	"errors"

	"slidebridge/internal/domain/alert"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type CloseAlertCommand struct {
	AlertID string
}

// CloseAlertUseCase resolves an alert locally and asks Slide to resolve it
// too. The remote close is best-effort: the local record is authoritative
// and a Slide failure only produces a warning.
type CloseAlertUseCase struct {
	alertRepo alert.Repository
	slide     SlideGateway
	logger    logger.Interface
}

func NewCloseAlertUseCase(
	alertRepo alert.Repository,
	slide SlideGateway,
	logger logger.Interface,
) *CloseAlertUseCase {
	return &CloseAlertUseCase{
		alertRepo: alertRepo,
		slide:     slide,
		logger:    logger,
	}
}

func (uc *CloseAlertUseCase) Execute(ctx context.Context, cmd CloseAlertCommand) error {
	if cmd.AlertID == "" {
		return apperrors.NewValidationError("alert ID is required")
	}

	entity, err := uc.alertRepo.FindByID(ctx, cmd.AlertID)
	if err != nil {
		if errors.Is(err, alert.ErrAlertNotFound) {
			return apperrors.NewNotFoundError("alert not found")
		}
		return err
	}

	entity.Resolve()
	if err := uc.alertRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to resolve alert", "alert_id", cmd.AlertID, "error", err)
		return err
	}

	if err := uc.slide.CloseAlert(ctx, cmd.AlertID); err != nil {
		uc.logger.Warnw("failed to close alert on slide, local record resolved anyway",
			"alert_id", cmd.AlertID,
			"error", err,
		)
	}

	uc.logger.Infow("alert resolved", "alert_id", cmd.AlertID)
	return nil
}
