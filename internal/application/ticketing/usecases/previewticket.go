package usecases

import (
	"context"
	"errors"
	"time"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/domain/ticketing"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type PreviewTicketCommand struct {
	// AlertID selects a real alert as the template context. When empty, a
	// representative sample alert is used instead.
	AlertID         string
	SummaryTemplate string
	BodyTemplate    string
}

type PreviewTicketResult struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// PreviewTicketUseCase renders templates without touching ConnectWise, so
// operators can check their token usage before saving the configuration.
type PreviewTicketUseCase struct {
	alertRepo   alert.Repository
	mappingRepo mapping.Repository
	configRepo  ticketing.ConfigRepository
	logger      logger.Interface
}

func NewPreviewTicketUseCase(
	alertRepo alert.Repository,
	mappingRepo mapping.Repository,
	configRepo ticketing.ConfigRepository,
	logger logger.Interface,
) *PreviewTicketUseCase {
	return &PreviewTicketUseCase{
		alertRepo:   alertRepo,
		mappingRepo: mappingRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

func (uc *PreviewTicketUseCase) Execute(ctx context.Context, cmd PreviewTicketCommand) (*PreviewTicketResult, error) {
	summaryTemplate := cmd.SummaryTemplate
	bodyTemplate := cmd.BodyTemplate

	if summaryTemplate == "" || bodyTemplate == "" {
		cfg, err := uc.configRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			cfg = ticketing.DefaultConfig()
		}
		if summaryTemplate == "" {
			summaryTemplate = cfg.SummaryTemplate
		}
		if bodyTemplate == "" {
			bodyTemplate = cfg.BodyTemplate
		}
	}

	tc, err := uc.buildContext(ctx, cmd.AlertID)
	if err != nil {
		return nil, err
	}

	return &PreviewTicketResult{
		Summary:     RenderTemplate(summaryTemplate, tc),
		Description: RenderTemplate(bodyTemplate, tc),
	}, nil
}

func (uc *PreviewTicketUseCase) buildContext(ctx context.Context, alertID string) (TemplateContext, error) {
	if alertID == "" {
		return TemplateContext{
			AlertType:     "backup_failed",
			ClientName:    "Example Client",
			DeviceName:    "EXAMPLE-SRV01",
			AlertMessage:  "Backup failed: destination unreachable",
			Timestamp:     time.Now(),
			AgentName:     "EXAMPLE-AGENT",
			AgentHostname: "example-agent.local",
		}, nil
	}

	entity, err := uc.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, alert.ErrAlertNotFound) {
			return TemplateContext{}, apperrors.NewNotFoundError("alert not found")
		}
		return TemplateContext{}, err
	}

	clientName := entity.ClientName()
	if m, err := uc.mappingRepo.FindBySlideClientID(ctx, entity.ClientID()); err == nil {
		clientName = m.ConnectWiseName()
	}
	if clientName == "" {
		clientName = entity.ClientID()
	}

	deviceName := entity.DeviceName()
	if deviceName == "" {
		deviceName = entity.DeviceID()
	}

	return TemplateContext{
		AlertType:     entity.Type(),
		ClientName:    clientName,
		DeviceName:    deviceName,
		AlertMessage:  entity.Message(),
		Timestamp:     entity.Timestamp(),
		AgentName:     entity.AgentName(),
		AgentHostname: entity.AgentHostname(),
	}, nil
}
