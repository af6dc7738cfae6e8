package usecases

import (
	"context"

	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/shared/logger"
)

type GetConfigResult struct {
	Config     *ticketing.Config
	Configured bool
}

// GetConfigUseCase returns the active ticketing configuration, or the
// defaults when none has been saved yet.
type GetConfigUseCase struct {
	configRepo ticketing.ConfigRepository
	logger     logger.Interface
}

func NewGetConfigUseCase(configRepo ticketing.ConfigRepository, logger logger.Interface) *GetConfigUseCase {
	return &GetConfigUseCase{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (uc *GetConfigUseCase) Execute(ctx context.Context) (*GetConfigResult, error) {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticketing config", "error", err)
		return nil, err
	}

	if cfg == nil {
		return &GetConfigResult{Config: ticketing.DefaultConfig(), Configured: false}, nil
	}

	return &GetConfigResult{Config: cfg, Configured: true}, nil
}
