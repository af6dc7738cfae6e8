package usecases

import "context"

// RemoteTicket is a ConnectWise ticket snapshot.
type RemoteTicket struct {
	ID          int
	Summary     string
	StatusName  string
	Closed      bool
	ClosedFlag  bool
	CompanyID   int
	CompanyName string
}

// CreateTicketParams is the resolved target for a new remote ticket.
type CreateTicketParams struct {
	CompanyID    int
	Summary      string
	Description  string
	BoardName    string
	StatusName   string
	PriorityName string
	TypeName     string
}

// TicketGateway is the ConnectWise surface the ticketing use cases need.
type TicketGateway interface {
	CreateTicket(ctx context.Context, params CreateTicketParams) (*RemoteTicket, error)
	GetTicket(ctx context.Context, ticketID int) (*RemoteTicket, error)
	AssignTicket(ctx context.Context, ticketID int, memberID int) error
}

// TransactionManager runs a function inside a database transaction.
// Satisfied by *db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DriftNotifier reports newly detected sync drift to operators.
type DriftNotifier interface {
	Enabled() bool
	NotifyDrift(items []DriftedLink) error
}

// DriftedLink is one link whose remote ticket closed while the local record
// stayed open.
type DriftedLink struct {
	AlertID      string
	TicketID     int
	TicketStatus string
	ClientName   string
	AlertType    string
}
