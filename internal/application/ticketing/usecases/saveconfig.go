package usecases

import (
	"context"
	"time"

	"slidebridge/internal/domain/ticketing"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type SaveConfigCommand struct {
	BoardID         int
	BoardName       string
	StatusID        int
	StatusName      string
	PriorityID      int
	PriorityName    string
	TypeID          int
	TypeName        string
	SummaryTemplate string
	BodyTemplate    string
	AutoAssignTech  bool
	TechnicianID    *int
	TechnicianName  string
}

// SaveConfigUseCase validates and replaces the singleton ticketing
// configuration wholesale. Partial updates are not supported; the UI always
// submits the full form.
type SaveConfigUseCase struct {
	configRepo ticketing.ConfigRepository
	logger     logger.Interface
}

func NewSaveConfigUseCase(configRepo ticketing.ConfigRepository, logger logger.Interface) *SaveConfigUseCase {
	return &SaveConfigUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (uc *SaveConfigUseCase) Execute(ctx context.Context, cmd SaveConfigCommand) (*ticketing.Config, error) {
	cfg := &ticketing.Config{
		BoardID:         cmd.BoardID,
		BoardName:       cmd.BoardName,
		StatusID:        cmd.StatusID,
		StatusName:      cmd.StatusName,
		PriorityID:      cmd.PriorityID,
		PriorityName:    cmd.PriorityName,
		TypeID:          cmd.TypeID,
		TypeName:        cmd.TypeName,
		SummaryTemplate: cmd.SummaryTemplate,
		BodyTemplate:    cmd.BodyTemplate,
		AutoAssignTech:  cmd.AutoAssignTech,
		TechnicianID:    cmd.TechnicianID,
		TechnicianName:  cmd.TechnicianName,
		UpdatedAt:       time.Now(),
	}

	if cfg.SummaryTemplate == "" {
		cfg.SummaryTemplate = ticketing.DefaultSummaryTemplate
	}
	if cfg.BodyTemplate == "" {
		cfg.BodyTemplate = ticketing.DefaultBodyTemplate
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.configRepo.Save(ctx, cfg); err != nil {
		uc.logger.Errorw("failed to save ticketing config", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticketing config saved",
		"board_id", cfg.BoardID,
		"status_id", cfg.StatusID,
		"priority_id", cfg.PriorityID,
		"type_id", cfg.TypeID,
		"auto_assign", cfg.AutoAssignTech,
	)

	return cfg, nil
}
