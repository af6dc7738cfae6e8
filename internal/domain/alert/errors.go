package alert

import "errors"

var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrAlertAlreadyLinked is returned when an alert already has a ticket linked.
	ErrAlertAlreadyLinked = errors.New("alert already has a linked ticket")
)
