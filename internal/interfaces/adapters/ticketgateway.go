package adapters

import (
	"context"

	ticketingusecases "slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/infrastructure/connectwise"
)

// TicketGatewayAdapter exposes ConnectWise ticket operations to the ticketing
// use cases.
type TicketGatewayAdapter struct {
	client *connectwise.Client
}

func NewTicketGatewayAdapter(client *connectwise.Client) *TicketGatewayAdapter {
	return &TicketGatewayAdapter{client: client}
}

func (a *TicketGatewayAdapter) CreateTicket(ctx context.Context, params ticketingusecases.CreateTicketParams) (*ticketingusecases.RemoteTicket, error) {
	ticket, err := a.client.CreateTicket(ctx, connectwise.CreateTicketParams{
		CompanyID:    params.CompanyID,
		Summary:      params.Summary,
		Description:  params.Description,
		BoardName:    params.BoardName,
		StatusName:   params.StatusName,
		PriorityName: params.PriorityName,
		TypeName:     params.TypeName,
	})
	if err != nil {
		return nil, err
	}
	return toRemoteTicket(ticket), nil
}

func (a *TicketGatewayAdapter) GetTicket(ctx context.Context, ticketID int) (*ticketingusecases.RemoteTicket, error) {
	ticket, err := a.client.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return toRemoteTicket(ticket), nil
}

func (a *TicketGatewayAdapter) AssignTicket(ctx context.Context, ticketID int, memberID int) error {
	return a.client.AssignTicket(ctx, ticketID, memberID)
}

func toRemoteTicket(t *connectwise.Ticket) *ticketingusecases.RemoteTicket {
	return &ticketingusecases.RemoteTicket{
		ID:          t.ID,
		Summary:     t.Summary,
		StatusName:  t.Status.Name,
		Closed:      t.IsClosed(),
		ClosedFlag:  t.Status.ClosedStatus,
		CompanyID:   t.Company.ID,
		CompanyName: t.Company.Name,
	}
}
