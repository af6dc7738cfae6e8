package usecases

import (
	"context"
	"time"
)

// RemoteAlert is an alert as fetched from Slide, with the alert_fields
// payload already parsed into named fields.
type RemoteAlert struct {
	ID            string
	Type          string
	ClientID      string
	ClientName    string
	DeviceID      string
	DeviceName    string
	AgentID       string
	AgentName     string
	AgentHostname string
	Message       string
	Timestamp     time.Time
	Resolved      bool
	RawFields     string
}

// RemoteDevice is a device entry from the Slide directory.
type RemoteDevice struct {
	ID       string
	Name     string
	ClientID string
}

// RemoteClient is a client entry from the Slide directory.
type RemoteClient struct {
	ID   string
	Name string
}

// SlideGateway is the Slide API surface the alert use cases need.
type SlideGateway interface {
	Alerts(ctx context.Context) ([]RemoteAlert, error)
	Devices(ctx context.Context) ([]RemoteDevice, error)
	Clients(ctx context.Context) ([]RemoteClient, error)
	CloseAlert(ctx context.Context, alertID string) error
}
