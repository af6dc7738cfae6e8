package adapters

import (
	"context"

	alertusecases "slidebridge/internal/application/alert/usecases"
	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/slide"
	"slidebridge/internal/shared/logger"
)

const slideDevicesCacheKey = "slide_devices"

// SlideGatewayAdapter exposes the Slide API to the alert use cases. Alerts
// are always fetched live; the device and client directories change rarely
// and are read through the cache.
type SlideGatewayAdapter struct {
	client *slide.Client
	cache  *cache.DirectoryCache
	logger logger.Interface
}

func NewSlideGatewayAdapter(client *slide.Client, dirCache *cache.DirectoryCache, log logger.Interface) *SlideGatewayAdapter {
	return &SlideGatewayAdapter{
		client: client,
		cache:  dirCache,
		logger: log,
	}
}

func (a *SlideGatewayAdapter) Alerts(ctx context.Context) ([]alertusecases.RemoteAlert, error) {
	alerts, err := a.client.GetAlerts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]alertusecases.RemoteAlert, 0, len(alerts))
	for i := range alerts {
		al := &alerts[i]
		result = append(result, alertusecases.RemoteAlert{
			ID:            al.ID,
			Type:          al.Type,
			ClientID:      al.ParsedClientID(),
			ClientName:    al.ParsedClientName(),
			DeviceID:      al.DeviceID,
			DeviceName:    al.ParsedDeviceName(),
			AgentID:       al.AgentID,
			AgentName:     al.ParsedAgentName(),
			AgentHostname: al.ParsedAgentHostname(),
			Message:       al.ParsedMessage(),
			Timestamp:     al.Timestamp,
			Resolved:      al.Resolved,
			RawFields:     al.AlertFields,
		})
	}
	return result, nil
}

func (a *SlideGatewayAdapter) Devices(ctx context.Context) ([]alertusecases.RemoteDevice, error) {
	devices, _, err := cache.Fetch(ctx, a.cache, slideDevicesCacheKey, a.client.GetDevices)
	if err != nil {
		return nil, err
	}

	result := make([]alertusecases.RemoteDevice, 0, len(devices))
	for _, d := range devices {
		result = append(result, alertusecases.RemoteDevice{
			ID:       d.ID,
			Name:     d.Name,
			ClientID: d.ClientID,
		})
	}
	return result, nil
}

func (a *SlideGatewayAdapter) Clients(ctx context.Context) ([]alertusecases.RemoteClient, error) {
	clients, _, err := cache.Fetch(ctx, a.cache, slideClientsCacheKey, a.client.GetClients)
	if err != nil {
		return nil, err
	}

	result := make([]alertusecases.RemoteClient, 0, len(clients))
	for _, c := range clients {
		result = append(result, alertusecases.RemoteClient{
			ID:   c.ID,
			Name: c.Name,
		})
	}
	return result, nil
}

func (a *SlideGatewayAdapter) CloseAlert(ctx context.Context, alertID string) error {
	return a.client.CloseAlert(ctx, alertID)
}
