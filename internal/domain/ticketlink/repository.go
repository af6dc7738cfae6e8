package ticketlink

import "context"

type Repository interface {
	// Save persists a new link. Returns ErrLinkExists when the alert already
	// has one; the unique index on alert_id backs the at-most-one invariant.
	Save(ctx context.Context, l *TicketLink) error
	Update(ctx context.Context, l *TicketLink) error
	// RefreshRemoteStatus persists only the cached remote-status fields of an
	// open link, leaving closedAt untouched. Reconciliation holds link
	// snapshots across slow remote calls; an operator may close the link in
	// that window and the explicit close must win. Returns
	// ErrLinkAlreadyClosed when the link was closed since it was loaded.
	RefreshRemoteStatus(ctx context.Context, l *TicketLink) error
	// FindByAlertID returns ErrLinkNotFound when absent.
	FindByAlertID(ctx context.Context, alertID string) (*TicketLink, error)
	// ListOpen returns links with closedAt unset, oldest first.
	ListOpen(ctx context.Context) ([]*TicketLink, error)
	// List returns the most recently created links up to limit.
	List(ctx context.Context, limit int) ([]*TicketLink, error)
	CountOpen(ctx context.Context) (int64, error)
}
