package usecases

import (
	"context"
	"time"

	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

type TicketLinkRow struct {
	AlertID           string     `json:"alertId"`
	TicketID          int        `json:"ticketId"`
	TicketStatus      string     `json:"ticketStatus"`
	TicketClosed      bool       `json:"ticketClosed"`
	TicketStatusError bool       `json:"ticketStatusError"`
	NeedsSync         bool       `json:"needsSync"`
	CheckedAt         *time.Time `json:"checkedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ClosedAt          *time.Time `json:"closedAt,omitempty"`
}

type ListTicketLinksQuery struct {
	// Limit caps the number of rows, newest first. Zero means no cap.
	Limit int
}

type ListTicketLinksResult struct {
	Links []TicketLinkRow
}

type ListTicketLinksUseCase struct {
	linkRepo ticketlink.Repository
	logger   logger.Interface
}

func NewListTicketLinksUseCase(linkRepo ticketlink.Repository, logger logger.Interface) *ListTicketLinksUseCase {
	return &ListTicketLinksUseCase{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

func (uc *ListTicketLinksUseCase) Execute(ctx context.Context, query ListTicketLinksQuery) (*ListTicketLinksResult, error) {
	links, err := uc.linkRepo.List(ctx, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list ticket links", "error", err)
		return nil, err
	}

	rows := make([]TicketLinkRow, 0, len(links))
	for _, link := range links {
		rows = append(rows, TicketLinkRow{
			AlertID:           link.AlertID(),
			TicketID:          link.TicketID(),
			TicketStatus:      link.TicketStatus(),
			TicketClosed:      link.TicketClosed(),
			TicketStatusError: link.TicketStatusError(),
			NeedsSync:         link.NeedsSync(),
			CheckedAt:         link.CheckedAt(),
			CreatedAt:         link.CreatedAt(),
			ClosedAt:          link.ClosedAt(),
		})
	}

	return &ListTicketLinksResult{Links: rows}, nil
}
