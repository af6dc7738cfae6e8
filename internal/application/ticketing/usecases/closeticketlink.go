package usecases

import (
	"context"
	"errors"
	"time"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type CloseTicketLinkCommand struct {
	AlertID string
}

// CloseTicketLinkUseCase marks a ticket link closed locally and resolves its
// alert. This is the explicit acknowledgement step for needsSync drift; the
// remote ticket is never touched.
type CloseTicketLinkUseCase struct {
	linkRepo  ticketlink.Repository
	alertRepo alert.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewCloseTicketLinkUseCase(
	linkRepo ticketlink.Repository,
	alertRepo alert.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *CloseTicketLinkUseCase {
	return &CloseTicketLinkUseCase{
		linkRepo:  linkRepo,
		alertRepo: alertRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CloseTicketLinkUseCase) Execute(ctx context.Context, cmd CloseTicketLinkCommand) error {
	if cmd.AlertID == "" {
		return apperrors.NewValidationError("alert ID is required")
	}

	link, err := uc.linkRepo.FindByAlertID(ctx, cmd.AlertID)
	if err != nil {
		if errors.Is(err, ticketlink.ErrLinkNotFound) {
			return apperrors.NewNotFoundError("no ticket link for alert")
		}
		return err
	}

	if err := link.Close(time.Now()); err != nil {
		if errors.Is(err, ticketlink.ErrLinkAlreadyClosed) {
			return apperrors.NewConflictError("ticket link is already closed")
		}
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.linkRepo.Update(txCtx, link); err != nil {
			return err
		}

		entity, err := uc.alertRepo.FindByID(txCtx, cmd.AlertID)
		if err != nil {
			if errors.Is(err, alert.ErrAlertNotFound) {
				// The link can outlive its alert row only through manual
				// surgery; closing the link alone is still correct.
				uc.logger.Warnw("closing ticket link without alert row", "alert_id", cmd.AlertID)
				return nil
			}
			return err
		}

		entity.Resolve()
		return uc.alertRepo.Update(txCtx, entity)
	})
	if err != nil {
		uc.logger.Errorw("failed to close ticket link", "alert_id", cmd.AlertID, "error", err)
		return err
	}

	uc.logger.Infow("ticket link closed", "alert_id", cmd.AlertID, "ticket_id", link.TicketID())
	return nil
}
