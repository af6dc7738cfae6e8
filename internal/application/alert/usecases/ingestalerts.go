package usecases

import (
	"context"
	"strings"

	"slidebridge/internal/domain/alert"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type IngestAlertsResult struct {
	Fetched int `json:"fetched"`
	Stored  int `json:"stored"`
	Errors  int `json:"errors"`
}

// IngestAlertsUseCase pulls the current alert list from Slide and upserts it
// locally. Alerts are the audit trail: rows are refreshed, never deleted.
//
// Client attribution is the tricky part. On MSP accounts the alert's own
// account is the MSP, not the end customer, so the real client is resolved in
// order: the device's registered client, then a device-name prefix or
// initials match against the client directory, then the alert account as the
// last resort.
type IngestAlertsUseCase struct {
	alertRepo alert.Repository
	slide     SlideGateway
	logger    logger.Interface
}

func NewIngestAlertsUseCase(
	alertRepo alert.Repository,
	slide SlideGateway,
	logger logger.Interface,
) *IngestAlertsUseCase {
	return &IngestAlertsUseCase{
		alertRepo: alertRepo,
		slide:     slide,
		logger:    logger,
	}
}

func (uc *IngestAlertsUseCase) Execute(ctx context.Context) (*IngestAlertsResult, error) {
	remoteAlerts, err := uc.slide.Alerts(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch alerts from slide", "error", err)
		return nil, apperrors.NewRemoteError("slide alerts unavailable")
	}

	// Directory fetches are best-effort; a missing directory degrades client
	// attribution, not the ingest itself.
	devices, err := uc.slide.Devices(ctx)
	if err != nil {
		uc.logger.Warnw("failed to fetch devices for alert enrichment", "error", err)
	}
	clients, err := uc.slide.Clients(ctx)
	if err != nil {
		uc.logger.Warnw("failed to fetch clients for alert enrichment", "error", err)
	}

	deviceToClient := make(map[string]string, len(devices))
	deviceNames := make(map[string]string, len(devices))
	for _, device := range devices {
		if device.ClientID != "" {
			deviceToClient[device.ID] = device.ClientID
		}
		deviceNames[device.ID] = device.Name
	}
	clientNames := make(map[string]string, len(clients))
	for _, client := range clients {
		clientNames[client.ID] = client.Name
	}

	result := &IngestAlertsResult{Fetched: len(remoteAlerts)}

	for _, remote := range remoteAlerts {
		entity, err := uc.buildAlert(remote, deviceToClient, deviceNames, clientNames, clients)
		if err != nil {
			uc.logger.Warnw("skipping malformed alert", "alert_id", remote.ID, "error", err)
			result.Errors++
			continue
		}

		if err := uc.alertRepo.Save(ctx, entity); err != nil {
			uc.logger.Errorw("failed to store alert", "alert_id", remote.ID, "error", err)
			result.Errors++
			continue
		}
		result.Stored++
	}

	uc.logger.Infow("alert ingest completed",
		"fetched", result.Fetched,
		"stored", result.Stored,
		"errors", result.Errors,
	)

	return result, nil
}

func (uc *IngestAlertsUseCase) buildAlert(
	remote RemoteAlert,
	deviceToClient, deviceNames, clientNames map[string]string,
	clients []RemoteClient,
) (*alert.Alert, error) {
	clientID, clientName := resolveClient(remote, deviceToClient, clientNames, clients)

	entity, err := alert.NewAlert(remote.ID, remote.Type, clientID, clientName, remote.DeviceID, remote.Message, remote.Timestamp)
	if err != nil {
		return nil, err
	}

	deviceName := remote.DeviceName
	if deviceName == "" {
		deviceName = deviceNames[remote.DeviceID]
	}
	entity.SetDeviceName(deviceName)

	agentName := remote.AgentName
	if agentName == "" {
		agentName = remote.AgentID
	}
	entity.SetAgent(agentName, remote.AgentHostname)
	entity.SetRawFields(remote.RawFields)
	entity.SetResolved(remote.Resolved)

	return entity, nil
}

// resolveClient attributes an alert to a Slide client.
func resolveClient(
	remote RemoteAlert,
	deviceToClient, clientNames map[string]string,
	clients []RemoteClient,
) (string, string) {
	if remote.DeviceID != "" {
		if clientID, ok := deviceToClient[remote.DeviceID]; ok && clientID != "" {
			return clientID, clientNames[clientID]
		}
	}

	if remote.DeviceName != "" {
		if matched := matchDeviceToClient(remote.DeviceName, clients); matched != nil {
			return matched.ID, matched.Name
		}
	}

	return remote.ClientID, remote.ClientName
}

// matchDeviceToClient matches a device naming convention (client prefix or
// initials before the first hyphen or digit) against the client directory.
func matchDeviceToClient(deviceName string, clients []RemoteClient) *RemoteClient {
	if deviceName == "" {
		return nil
	}

	deviceUpper := strings.ToUpper(deviceName)

	var prefix string
	for i, ch := range deviceUpper {
		if ch == '-' || (ch >= '0' && ch <= '9') {
			prefix = deviceUpper[:i]
			break
		}
	}
	if prefix == "" {
		prefix = deviceUpper
	}

	for i := range clients {
		client := &clients[i]
		clientUpper := strings.ToUpper(client.Name)

		if strings.HasPrefix(clientUpper, prefix) {
			return client
		}

		var initials strings.Builder
		for _, word := range strings.Fields(clientUpper) {
			if word == "LLC" || word == "INC" || word == "CORP" || word == "P.C." {
				continue
			}
			initials.WriteByte(word[0])
		}
		if initials.String() == prefix {
			return client
		}
	}

	return nil
}
