package usecases

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/domain/ticketlink"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type CreateTicketForAlertCommand struct {
	AlertID string
}

type CreateTicketForAlertResult struct {
	TicketID    int    `json:"ticketId"`
	Summary     string `json:"summary"`
	CompanyID   int    `json:"companyId"`
	CompanyName string `json:"companyName"`
}

// CreateTicketForAlertUseCase opens a ConnectWise ticket for an alert and
// records the link. The at-most-one-ticket-per-alert invariant is enforced
// three times over: a per-alert singleflight collapses concurrent requests
// in-process, the precondition check rejects known links, and the unique
// index on the link table is the final arbiter.
type CreateTicketForAlertUseCase struct {
	alertRepo   alert.Repository
	mappingRepo mapping.Repository
	configRepo  ticketing.ConfigRepository
	linkRepo    ticketlink.Repository
	tickets     TicketGateway
	txManager   TransactionManager
	group       singleflight.Group
	logger      logger.Interface
}

func NewCreateTicketForAlertUseCase(
	alertRepo alert.Repository,
	mappingRepo mapping.Repository,
	configRepo ticketing.ConfigRepository,
	linkRepo ticketlink.Repository,
	tickets TicketGateway,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketForAlertUseCase {
	return &CreateTicketForAlertUseCase{
		alertRepo:   alertRepo,
		mappingRepo: mappingRepo,
		configRepo:  configRepo,
		linkRepo:    linkRepo,
		tickets:     tickets,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateTicketForAlertUseCase) Execute(ctx context.Context, cmd CreateTicketForAlertCommand) (*CreateTicketForAlertResult, error) {
	if cmd.AlertID == "" {
		return nil, apperrors.NewValidationError("alert ID is required")
	}

	result, err, _ := uc.group.Do(cmd.AlertID, func() (any, error) {
		return uc.run(ctx, cmd.AlertID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*CreateTicketForAlertResult), nil
}

func (uc *CreateTicketForAlertUseCase) run(ctx context.Context, alertID string) (*CreateTicketForAlertResult, error) {
	entity, err := uc.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, alert.ErrAlertNotFound) {
			return nil, apperrors.NewNotFoundError("alert not found")
		}
		return nil, err
	}

	if entity.TicketID() != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("alert already linked to ticket %d", *entity.TicketID()))
	}
	if _, err := uc.linkRepo.FindByAlertID(ctx, alertID); err == nil {
		return nil, apperrors.NewConflictError("alert already linked to a ticket")
	} else if !errors.Is(err, ticketlink.ErrLinkNotFound) {
		return nil, err
	}

	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.IsComplete() {
		return nil, apperrors.NewPreconditionError("ticketing configuration is incomplete")
	}

	clientMapping, err := uc.mappingRepo.FindBySlideClientID(ctx, entity.ClientID())
	if err != nil {
		if errors.Is(err, mapping.ErrMappingNotFound) {
			return nil, apperrors.NewPreconditionError(
				fmt.Sprintf("no company mapping for slide client %q", entity.ClientID()))
		}
		return nil, err
	}

	summary, description := uc.renderTemplates(cfg, entity, clientMapping)

	remote, err := uc.tickets.CreateTicket(ctx, CreateTicketParams{
		CompanyID:    clientMapping.ConnectWiseID(),
		Summary:      summary,
		Description:  description,
		BoardName:    cfg.BoardName,
		StatusName:   cfg.StatusName,
		PriorityName: cfg.PriorityName,
		TypeName:     cfg.TypeName,
	})
	if err != nil {
		uc.logger.Errorw("failed to create remote ticket", "alert_id", alertID, "error", err)
		return nil, apperrors.NewRemoteError("failed to create connectwise ticket")
	}

	// Assignment failures do not unwind the ticket; an unassigned ticket is
	// still a ticket.
	if cfg.AutoAssignTech && cfg.TechnicianID != nil {
		if err := uc.tickets.AssignTicket(ctx, remote.ID, *cfg.TechnicianID); err != nil {
			uc.logger.Warnw("failed to auto-assign ticket",
				"ticket_id", remote.ID,
				"technician_id", *cfg.TechnicianID,
				"error", err,
			)
		}
	}

	link, err := ticketlink.NewTicketLink(alertID, remote.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.linkRepo.Save(txCtx, link); err != nil {
			return err
		}
		return uc.alertRepo.AttachTicket(txCtx, alertID, remote.ID)
	})
	if err != nil {
		if errors.Is(err, ticketlink.ErrLinkExists) || errors.Is(err, alert.ErrAlertAlreadyLinked) {
			// Lost a race with another creator. The remote ticket this call
			// opened is now orphaned; surface it rather than hiding it.
			uc.logger.Errorw("alert linked concurrently, orphaned remote ticket needs manual cleanup",
				"alert_id", alertID,
				"orphaned_ticket_id", remote.ID,
			)
			return nil, apperrors.NewConflictError("alert already linked to a ticket")
		}
		uc.logger.Errorw("failed to persist ticket link", "alert_id", alertID, "ticket_id", remote.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created for alert",
		"alert_id", alertID,
		"ticket_id", remote.ID,
		"company_id", remote.CompanyID,
	)

	return &CreateTicketForAlertResult{
		TicketID:    remote.ID,
		Summary:     remote.Summary,
		CompanyID:   remote.CompanyID,
		CompanyName: remote.CompanyName,
	}, nil
}

// renderTemplates builds the summary and description. The mapped ConnectWise
// company name is preferred for {{client_name}} since that is the name the
// ticket recipient knows; any other missing value renders as an empty string.
func (uc *CreateTicketForAlertUseCase) renderTemplates(
	cfg *ticketing.Config,
	entity *alert.Alert,
	clientMapping *mapping.ClientMapping,
) (string, string) {
	clientName := clientMapping.ConnectWiseName()
	if clientName == "" {
		clientName = entity.ClientName()
	}

	tc := TemplateContext{
		AlertType:     entity.Type(),
		ClientName:    clientName,
		DeviceName:    entity.DeviceName(),
		AlertMessage:  entity.Message(),
		Timestamp:     entity.Timestamp(),
		AgentName:     entity.AgentName(),
		AgentHostname: entity.AgentHostname(),
	}

	summaryTemplate := cfg.SummaryTemplate
	if summaryTemplate == "" {
		summaryTemplate = ticketing.DefaultSummaryTemplate
	}
	bodyTemplate := cfg.BodyTemplate
	if bodyTemplate == "" {
		bodyTemplate = ticketing.DefaultBodyTemplate
	}

	return RenderTemplate(summaryTemplate, tc), RenderTemplate(bodyTemplate, tc)
}
