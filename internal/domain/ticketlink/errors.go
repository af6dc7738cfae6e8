package ticketlink

import "errors"

var (
	// ErrLinkExists is returned when an alert already has a ticket link.
	ErrLinkExists = errors.New("ticket link already exists for alert")

	// ErrLinkNotFound is returned when no ticket link exists for an alert.
	ErrLinkNotFound = errors.New("ticket link not found")

	// ErrLinkAlreadyClosed is returned when closing an already closed link.
	ErrLinkAlreadyClosed = errors.New("ticket link is already closed")
)
