package alert

import (
	"fmt"
	"time"
)

// Alert is a locally persisted record of a Slide alert. Alerts are ingested
// from the Slide API and kept forever as an audit trail; ingestion refreshes
// mutable fields but never deletes rows.
type Alert struct {
	id            string
	alertType     string
	clientID      string
	clientName    string
	deviceID      string
	deviceName    string
	agentName     string
	agentHostname string
	message       string
	timestamp     time.Time
	resolved      bool
	ticketID      *int
	rawFields     string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAlert(id, alertType, clientID, clientName, deviceID, message string, timestamp time.Time) (*Alert, error) {
	if id == "" {
		return nil, fmt.Errorf("alert ID is required")
	}
	if alertType == "" {
		return nil, fmt.Errorf("alert type is required")
	}

	now := time.Now()
	return &Alert{
		id:         id,
		alertType:  alertType,
		clientID:   clientID,
		clientName: clientName,
		deviceID:   deviceID,
		message:    message,
		timestamp:  timestamp,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAlert(
	id, alertType, clientID, clientName, deviceID, deviceName, agentName, agentHostname, message string,
	timestamp time.Time,
	resolved bool,
	ticketID *int,
	rawFields string,
	createdAt, updatedAt time.Time,
) (*Alert, error) {
	if id == "" {
		return nil, fmt.Errorf("alert ID is required")
	}

	return &Alert{
		id:            id,
		alertType:     alertType,
		clientID:      clientID,
		clientName:    clientName,
		deviceID:      deviceID,
		deviceName:    deviceName,
		agentName:     agentName,
		agentHostname: agentHostname,
		message:       message,
		timestamp:     timestamp,
		resolved:      resolved,
		ticketID:      ticketID,
		rawFields:     rawFields,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (a *Alert) ID() string            { return a.id }
func (a *Alert) Type() string          { return a.alertType }
func (a *Alert) ClientID() string      { return a.clientID }
func (a *Alert) ClientName() string    { return a.clientName }
func (a *Alert) DeviceID() string      { return a.deviceID }
func (a *Alert) DeviceName() string    { return a.deviceName }
func (a *Alert) AgentName() string     { return a.agentName }
func (a *Alert) AgentHostname() string { return a.agentHostname }
func (a *Alert) Message() string       { return a.message }
func (a *Alert) Timestamp() time.Time  { return a.timestamp }
func (a *Alert) Resolved() bool        { return a.resolved }
func (a *Alert) TicketID() *int        { return a.ticketID }
func (a *Alert) RawFields() string     { return a.rawFields }
func (a *Alert) CreatedAt() time.Time  { return a.createdAt }
func (a *Alert) UpdatedAt() time.Time  { return a.updatedAt }

// SetDeviceName and friends are ingest-time enrichment setters; the values
// come from the alert_fields payload or the device directory.
func (a *Alert) SetDeviceName(name string) {
	a.deviceName = name
	a.touch()
}

func (a *Alert) SetAgent(name, hostname string) {
	a.agentName = name
	a.agentHostname = hostname
	a.touch()
}

func (a *Alert) SetClient(clientID, clientName string) {
	a.clientID = clientID
	a.clientName = clientName
	a.touch()
}

func (a *Alert) SetRawFields(raw string) {
	a.rawFields = raw
	a.touch()
}

func (a *Alert) Resolve() {
	if a.resolved {
		return
	}
	a.resolved = true
	a.touch()
}

func (a *Alert) SetResolved(resolved bool) {
	if a.resolved == resolved {
		return
	}
	a.resolved = resolved
	a.touch()
}

// LinkTicket records the ticket opened for this alert. At most one ticket may
// ever be linked.
func (a *Alert) LinkTicket(ticketID int) error {
	if a.ticketID != nil {
		return ErrAlertAlreadyLinked
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	a.ticketID = &ticketID
	a.touch()
	return nil
}

func (a *Alert) touch() {
	a.updatedAt = time.Now()
}
