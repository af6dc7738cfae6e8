package ticketlink

import (
	"fmt"
	"time"
)

// TicketLink ties one alert to the one ConnectWise ticket opened for it.
// closedAt is the authoritative local lifecycle field and is only set by an
// explicit close. The remaining remote fields are a cache refreshed by
// reconciliation; they are derived state, never a source of truth.
type TicketLink struct {
	id        uint
	alertID   string
	ticketID  int
	createdAt time.Time
	closedAt  *time.Time

	ticketStatus      string
	ticketClosed      bool
	ticketClosedFlag  bool
	ticketStatusError bool
	needsSync         bool
	checkedAt         *time.Time
}

func NewTicketLink(alertID string, ticketID int) (*TicketLink, error) {
	if alertID == "" {
		return nil, fmt.Errorf("alert ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &TicketLink{
		alertID:   alertID,
		ticketID:  ticketID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTicketLink(
	id uint,
	alertID string,
	ticketID int,
	createdAt time.Time,
	closedAt *time.Time,
	ticketStatus string,
	ticketClosed, ticketClosedFlag, ticketStatusError, needsSync bool,
	checkedAt *time.Time,
) (*TicketLink, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket link ID cannot be zero")
	}
	if alertID == "" {
		return nil, fmt.Errorf("alert ID is required")
	}

	return &TicketLink{
		id:                id,
		alertID:           alertID,
		ticketID:          ticketID,
		createdAt:         createdAt,
		closedAt:          closedAt,
		ticketStatus:      ticketStatus,
		ticketClosed:      ticketClosed,
		ticketClosedFlag:  ticketClosedFlag,
		ticketStatusError: ticketStatusError,
		needsSync:         needsSync,
		checkedAt:         checkedAt,
	}, nil
}

func (l *TicketLink) ID() uint                { return l.id }
func (l *TicketLink) AlertID() string         { return l.alertID }
func (l *TicketLink) TicketID() int           { return l.ticketID }
func (l *TicketLink) CreatedAt() time.Time    { return l.createdAt }
func (l *TicketLink) ClosedAt() *time.Time    { return l.closedAt }
func (l *TicketLink) TicketStatus() string    { return l.ticketStatus }
func (l *TicketLink) TicketClosed() bool      { return l.ticketClosed }
func (l *TicketLink) TicketClosedFlag() bool  { return l.ticketClosedFlag }
func (l *TicketLink) TicketStatusError() bool { return l.ticketStatusError }
func (l *TicketLink) NeedsSync() bool         { return l.needsSync }
func (l *TicketLink) CheckedAt() *time.Time   { return l.checkedAt }

func (l *TicketLink) IsOpen() bool { return l.closedAt == nil }

func (l *TicketLink) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("ticket link ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket link ID cannot be zero")
	}
	l.id = id
	return nil
}

// ApplyRemoteStatus records a successful remote status poll. needsSync holds
// exactly when the remote ticket is closed while the link is still locally
// open; reconciliation only flags the drift, closing remains explicit.
func (l *TicketLink) ApplyRemoteStatus(statusName string, closed, closedFlag bool, at time.Time) {
	l.ticketStatus = statusName
	l.ticketClosed = closed
	l.ticketClosedFlag = closedFlag
	l.ticketStatusError = false
	l.needsSync = closed && l.closedAt == nil
	checked := at
	l.checkedAt = &checked
}

// MarkStatusError records a failed remote status poll. Previously cached
// remote fields are kept as-is: stale but labeled, never reset to a guess.
func (l *TicketLink) MarkStatusError(at time.Time) {
	l.ticketStatusError = true
	checked := at
	l.checkedAt = &checked
}

// Close marks the link locally closed. The caller is responsible for also
// resolving the associated alert.
func (l *TicketLink) Close(at time.Time) error {
	if l.closedAt != nil {
		return ErrLinkAlreadyClosed
	}
	closed := at
	l.closedAt = &closed
	l.needsSync = false
	return nil
}

// Reopen clears the local closure so reconciliation resumes watching the
// remote ticket.
func (l *TicketLink) Reopen() {
	l.closedAt = nil
	l.needsSync = l.ticketClosed
}
