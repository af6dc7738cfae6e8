package slide

import (
	"encoding/json"
	"time"
)

// Device is a backup appliance registered with Slide.
type Device struct {
	ID       string `json:"device_id"`
	Name     string `json:"display_name"`
	Hostname string `json:"hostname"`
	ClientID string `json:"client_id"`
}

// SlideClient is a client (end customer) in the Slide account.
type SlideClient struct {
	ID   string `json:"client_id"`
	Name string `json:"name"`
}

// Alert is an alert raised by Slide. Newer alert types carry most of their
// context inside the alert_fields JSON payload rather than top-level fields.
type Alert struct {
	ID          string    `json:"alert_id"`
	DeviceID    string    `json:"device_id"`
	ClientID    string    `json:"client_id"`
	Type        string    `json:"alert_type"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"created_at"`
	Resolved    bool      `json:"resolved"`
	AgentID     string    `json:"agent_id"`
	AlertFields string    `json:"alert_fields"`
}

// alertFieldsData is the parsed shape of the alert_fields payload.
type alertFieldsData struct {
	Account struct {
		AccountID string `json:"account_id"`
		Name      string `json:"name"`
	} `json:"account"`
	BackupErrorMessage string `json:"backup_error_message"`
	Agent              struct {
		Name     string `json:"name"`
		AgentID  string `json:"agent_id"`
		Hostname string `json:"hostname"`
	} `json:"agent"`
	Device struct {
		Name     string `json:"name"`
		Hostname string `json:"hostname"`
	} `json:"device"`
}

func (a *Alert) parsedFields() (alertFieldsData, bool) {
	var fields alertFieldsData
	if a.AlertFields == "" {
		return fields, false
	}
	if err := json.Unmarshal([]byte(a.AlertFields), &fields); err != nil {
		return fields, false
	}
	return fields, true
}

// ParsedClientID returns the top-level client ID, falling back to the
// account ID embedded in alert_fields.
func (a *Alert) ParsedClientID() string {
	if a.ClientID != "" {
		return a.ClientID
	}
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.Account.AccountID
}

// ParsedMessage returns the top-level message, falling back to the backup
// error message embedded in alert_fields.
func (a *Alert) ParsedMessage() string {
	if a.Message != "" {
		return a.Message
	}
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.BackupErrorMessage
}

func (a *Alert) ParsedClientName() string {
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.Account.Name
}

func (a *Alert) ParsedDeviceName() string {
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.Device.Name
}

func (a *Alert) ParsedAgentName() string {
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.Agent.Name
}

func (a *Alert) ParsedAgentHostname() string {
	fields, ok := a.parsedFields()
	if !ok {
		return ""
	}
	return fields.Agent.Hostname
}
