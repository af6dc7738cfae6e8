package alert

import "context"

type Repository interface {
	Save(ctx context.Context, a *Alert) error
	// Update never writes the ticket ID column; linking goes through
	// AttachTicket so a stale snapshot cannot erase a concurrent link.
	Update(ctx context.Context, a *Alert) error
	// AttachTicket records the linked ticket for an unlinked alert. Returns
	// ErrAlertAlreadyLinked when a ticket is already attached.
	AttachTicket(ctx context.Context, alertID string, ticketID int) error
	// FindByID returns ErrAlertNotFound when absent.
	FindByID(ctx context.Context, id string) (*Alert, error)
	List(ctx context.Context) ([]*Alert, error)
	Count(ctx context.Context) (int64, error)
	CountUnresolved(ctx context.Context) (int64, error)
}
