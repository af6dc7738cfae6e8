package usecases

import (
	"context"
	"errors"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type ReopenTicketLinkCommand struct {
	AlertID string
}

// ReopenTicketLinkUseCase clears a local closure so reconciliation resumes
// watching the remote ticket. The alert is unresolved again as well.
type ReopenTicketLinkUseCase struct {
	linkRepo  ticketlink.Repository
	alertRepo alert.Repository
	txManager TransactionManager
	logger    logger.Interface
}

func NewReopenTicketLinkUseCase(
	linkRepo ticketlink.Repository,
	alertRepo alert.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *ReopenTicketLinkUseCase {
	return &ReopenTicketLinkUseCase{
		linkRepo:  linkRepo,
		alertRepo: alertRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *ReopenTicketLinkUseCase) Execute(ctx context.Context, cmd ReopenTicketLinkCommand) error {
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

	if link.IsOpen() {
		return apperrors.NewConflictError("ticket link is already open")
	}

	link.Reopen()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.linkRepo.Update(txCtx, link); err != nil {
			return err
		}

		entity, err := uc.alertRepo.FindByID(txCtx, cmd.AlertID)
		if err != nil {
			if errors.Is(err, alert.ErrAlertNotFound) {
				return nil
			}
			return err
		}

		entity.SetResolved(false)
		return uc.alertRepo.Update(txCtx, entity)
	})
	if err != nil {
		uc.logger.Errorw("failed to reopen ticket link", "alert_id", cmd.AlertID, "error", err)
		return err
	}

	uc.logger.Infow("ticket link reopened", "alert_id", cmd.AlertID, "ticket_id", link.TicketID())
	return nil
}
