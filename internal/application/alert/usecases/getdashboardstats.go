package usecases

import (
	"context"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

type DashboardStats struct {
	TotalAlerts      int64 `json:"totalAlerts"`
	UnresolvedAlerts int64 `json:"unresolvedAlerts"`
	MappedClients    int64 `json:"mappedClients"`
	TotalClients     int64 `json:"totalClients"`
	OpenTickets      int64 `json:"openTickets"`
}

type GetDashboardStatsUseCase struct {
	alertRepo   alert.Repository
	mappingRepo mapping.Repository
	linkRepo    ticketlink.Repository
	slide       SlideGateway
	logger      logger.Interface
}

func NewGetDashboardStatsUseCase(
	alertRepo alert.Repository,
	mappingRepo mapping.Repository,
	linkRepo ticketlink.Repository,
	slide SlideGateway,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		alertRepo:   alertRepo,
		mappingRepo: mappingRepo,
		linkRepo:    linkRepo,
		slide:       slide,
		logger:      logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalAlerts, err = uc.alertRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.UnresolvedAlerts, err = uc.alertRepo.CountUnresolved(ctx); err != nil {
		return nil, err
	}
	if stats.MappedClients, err = uc.mappingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = uc.linkRepo.CountOpen(ctx); err != nil {
		return nil, err
	}

	// Directory size is best effort; a Slide outage should not blank the
	// local counters.
	clients, err := uc.slide.Clients(ctx)
	if err != nil {
		uc.logger.Warnw("slide directory unavailable for dashboard stats", "error", err)
		stats.TotalClients = stats.MappedClients
	} else {
		stats.TotalClients = int64(len(clients))
	}

	return stats, nil
}
