package adapters

import (
	ticketingusecases "slidebridge/internal/application/ticketing/usecases"
	"slidebridge/internal/infrastructure/email"
)

// DriftNotifierAdapter delivers reconciliation drift reports over email.
type DriftNotifierAdapter struct {
	notifier *email.DriftNotifier
}

func NewDriftNotifierAdapter(notifier *email.DriftNotifier) *DriftNotifierAdapter {
	return &DriftNotifierAdapter{notifier: notifier}
}

func (a *DriftNotifierAdapter) Enabled() bool {
	return a.notifier.Enabled()
}

func (a *DriftNotifierAdapter) NotifyDrift(items []ticketingusecases.DriftedLink) error {
	report := make([]email.DriftItem, 0, len(items))
	for _, item := range items {
		report = append(report, email.DriftItem{
			AlertID:      item.AlertID,
			TicketID:     item.TicketID,
			TicketStatus: item.TicketStatus,
			ClientName:   item.ClientName,
			AlertType:    item.AlertType,
		})
	}
	return a.notifier.SendDriftReport(report)
}
