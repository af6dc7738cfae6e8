package usecases

import (
	"context"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

type mockAlertRepository struct {
	SaveFunc            func(ctx context.Context, a *alert.Alert) error
	UpdateFunc          func(ctx context.Context, a *alert.Alert) error
	AttachTicketFunc    func(ctx context.Context, alertID string, ticketID int) error
	FindByIDFunc        func(ctx context.Context, id string) (*alert.Alert, error)
	ListFunc            func(ctx context.Context) ([]*alert.Alert, error)
	CountFunc           func(ctx context.Context) (int64, error)
	CountUnresolvedFunc func(ctx context.Context) (int64, error)
}

func (m *mockAlertRepository) Save(ctx context.Context, a *alert.Alert) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) AttachTicket(ctx context.Context, alertID string, ticketID int) error {
	if m.AttachTicketFunc != nil {
		return m.AttachTicketFunc(ctx, alertID, ticketID)
	}
	return nil
}

func (m *mockAlertRepository) FindByID(ctx context.Context, id string) (*alert.Alert, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, alert.ErrAlertNotFound
}

func (m *mockAlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAlertRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockAlertRepository) CountUnresolved(ctx context.Context) (int64, error) {
	if m.CountUnresolvedFunc != nil {
		return m.CountUnresolvedFunc(ctx)
	}
	return 0, nil
}

type mockTicketLinkRepository struct {
	SaveFunc                func(ctx context.Context, l *ticketlink.TicketLink) error
	UpdateFunc              func(ctx context.Context, l *ticketlink.TicketLink) error
	RefreshRemoteStatusFunc func(ctx context.Context, l *ticketlink.TicketLink) error
	FindByAlertIDFunc       func(ctx context.Context, alertID string) (*ticketlink.TicketLink, error)
	ListOpenFunc            func(ctx context.Context) ([]*ticketlink.TicketLink, error)
	ListFunc                func(ctx context.Context, limit int) ([]*ticketlink.TicketLink, error)
	CountOpenFunc           func(ctx context.Context) (int64, error)
}

func (m *mockTicketLinkRepository) Save(ctx context.Context, l *ticketlink.TicketLink) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockTicketLinkRepository) Update(ctx context.Context, l *ticketlink.TicketLink) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockTicketLinkRepository) RefreshRemoteStatus(ctx context.Context, l *ticketlink.TicketLink) error {
	if m.RefreshRemoteStatusFunc != nil {
		return m.RefreshRemoteStatusFunc(ctx, l)
	}
	return nil
}

func (m *mockTicketLinkRepository) FindByAlertID(ctx context.Context, alertID string) (*ticketlink.TicketLink, error) {
	if m.FindByAlertIDFunc != nil {
		return m.FindByAlertIDFunc(ctx, alertID)
	}
	return nil, ticketlink.ErrLinkNotFound
}

func (m *mockTicketLinkRepository) ListOpen(ctx context.Context) ([]*ticketlink.TicketLink, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketLinkRepository) List(ctx context.Context, limit int) ([]*ticketlink.TicketLink, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockTicketLinkRepository) CountOpen(ctx context.Context) (int64, error) {
	if m.CountOpenFunc != nil {
		return m.CountOpenFunc(ctx)
	}
	return 0, nil
}

type mockSlideGateway struct {
	AlertsFunc     func(ctx context.Context) ([]RemoteAlert, error)
	DevicesFunc    func(ctx context.Context) ([]RemoteDevice, error)
	ClientsFunc    func(ctx context.Context) ([]RemoteClient, error)
	CloseAlertFunc func(ctx context.Context, alertID string) error
}

func (m *mockSlideGateway) Alerts(ctx context.Context) ([]RemoteAlert, error) {
	if m.AlertsFunc != nil {
		return m.AlertsFunc(ctx)
	}
	return nil, nil
}

func (m *mockSlideGateway) Devices(ctx context.Context) ([]RemoteDevice, error) {
	if m.DevicesFunc != nil {
		return m.DevicesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSlideGateway) Clients(ctx context.Context) ([]RemoteClient, error) {
	if m.ClientsFunc != nil {
		return m.ClientsFunc(ctx)
	}
	return nil, nil
}

func (m *mockSlideGateway) CloseAlert(ctx context.Context, alertID string) error {
	if m.CloseAlertFunc != nil {
		return m.CloseAlertFunc(ctx, alertID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)  {}
func (m *mockLogger) Info(msg string, args ...any)   {}
func (m *mockLogger) Warn(msg string, args ...any)   {}
func (m *mockLogger) Error(msg string, args ...any)  {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
