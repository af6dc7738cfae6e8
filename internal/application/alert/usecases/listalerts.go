package usecases

import (
	"context"
	"time"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

type AlertRow struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ClientID      string    `json:"clientId"`
	ClientName    string    `json:"clientName"`
	DeviceID      string    `json:"deviceId"`
	DeviceName    string    `json:"deviceName"`
	AgentName     string    `json:"agentName"`
	AgentHostname string    `json:"agentHostname"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Resolved      bool      `json:"resolved"`
	TicketID      *int      `json:"ticketId,omitempty"`
	NeedsSync     bool      `json:"needsSync"`
}

type ListAlertsQuery struct {
	UnresolvedOnly bool
}

type ListAlertsResult struct {
	Alerts []AlertRow
}

// ListAlertsUseCase returns persisted alerts newest first, each annotated
// with its linked ticket and sync flag when one exists.
type ListAlertsUseCase struct {
	alertRepo alert.Repository
	linkRepo  ticketlink.Repository
	logger    logger.Interface
}

func NewListAlertsUseCase(
	alertRepo alert.Repository,
	linkRepo ticketlink.Repository,
	logger logger.Interface,
) *ListAlertsUseCase {
	return &ListAlertsUseCase{
		alertRepo: alertRepo,
		linkRepo:  linkRepo,
		logger:    logger,
	}
}

func (uc *ListAlertsUseCase) Execute(ctx context.Context, query ListAlertsQuery) (*ListAlertsResult, error) {
	alerts, err := uc.alertRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list alerts", "error", err)
		return nil, err
	}

	links, err := uc.linkRepo.List(ctx, 0)
	if err != nil {
		uc.logger.Errorw("failed to list ticket links", "error", err)
		return nil, err
	}
	needsSync := make(map[string]bool, len(links))
	for _, link := range links {
		needsSync[link.AlertID()] = link.NeedsSync()
	}

	rows := make([]AlertRow, 0, len(alerts))
	for _, a := range alerts {
		if query.UnresolvedOnly && a.Resolved() {
			continue
		}
		rows = append(rows, AlertRow{
			ID:            a.ID(),
			Type:          a.Type(),
			ClientID:      a.ClientID(),
			ClientName:    a.ClientName(),
			DeviceID:      a.DeviceID(),
			DeviceName:    a.DeviceName(),
			AgentName:     a.AgentName(),
			AgentHostname: a.AgentHostname(),
			Message:       a.Message(),
			Timestamp:     a.Timestamp(),
			Resolved:      a.Resolved(),
			TicketID:      a.TicketID(),
			NeedsSync:     needsSync[a.ID()],
		})
	}

	return &ListAlertsResult{Alerts: rows}, nil
}
