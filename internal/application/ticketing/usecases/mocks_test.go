package usecases

import (
	"context"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/domain/ticketing"
	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

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

type mockMappingRepository struct {
	SaveFunc                func(ctx context.Context, cm *mapping.ClientMapping) error
	DeleteFunc              func(ctx context.Context, slideClientID string) error
	FindBySlideClientIDFunc func(ctx context.Context, slideClientID string) (*mapping.ClientMapping, error)
	ListFunc                func(ctx context.Context) ([]*mapping.ClientMapping, error)
	CountFunc               func(ctx context.Context) (int64, error)
}

func (m *mockMappingRepository) Save(ctx context.Context, cm *mapping.ClientMapping) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, cm)
	}
	return nil
}

func (m *mockMappingRepository) Delete(ctx context.Context, slideClientID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, slideClientID)
	}
	return nil
}

func (m *mockMappingRepository) FindBySlideClientID(ctx context.Context, slideClientID string) (*mapping.ClientMapping, error) {
	if m.FindBySlideClientIDFunc != nil {
		return m.FindBySlideClientIDFunc(ctx, slideClientID)
	}
	return nil, mapping.ErrMappingNotFound
}

func (m *mockMappingRepository) List(ctx context.Context) ([]*mapping.ClientMapping, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMappingRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockConfigRepository struct {
	GetFunc  func(ctx context.Context) (*ticketing.Config, error)
	SaveFunc func(ctx context.Context, c *ticketing.Config) error
}

func (m *mockConfigRepository) Get(ctx context.Context) (*ticketing.Config, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockConfigRepository) Save(ctx context.Context, c *ticketing.Config) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

type mockTicketGateway struct {
	CreateTicketFunc func(ctx context.Context, params CreateTicketParams) (*RemoteTicket, error)
	GetTicketFunc    func(ctx context.Context, ticketID int) (*RemoteTicket, error)
	AssignTicketFunc func(ctx context.Context, ticketID int, memberID int) error
}

func (m *mockTicketGateway) CreateTicket(ctx context.Context, params CreateTicketParams) (*RemoteTicket, error) {
	if m.CreateTicketFunc != nil {
		return m.CreateTicketFunc(ctx, params)
	}
	return &RemoteTicket{ID: 1}, nil
}

func (m *mockTicketGateway) GetTicket(ctx context.Context, ticketID int) (*RemoteTicket, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, ticketID)
	}
	return &RemoteTicket{ID: ticketID}, nil
}

func (m *mockTicketGateway) AssignTicket(ctx context.Context, ticketID int, memberID int) error {
	if m.AssignTicketFunc != nil {
		return m.AssignTicketFunc(ctx, ticketID, memberID)
	}
	return nil
}

type mockDriftNotifier struct {
	EnabledFunc     func() bool
	NotifyDriftFunc func(items []DriftedLink) error
}

func (m *mockDriftNotifier) Enabled() bool {
	if m.EnabledFunc != nil {
		return m.EnabledFunc()
	}
	return true
}

func (m *mockDriftNotifier) NotifyDrift(items []DriftedLink) error {
	if m.NotifyDriftFunc != nil {
		return m.NotifyDriftFunc(items)
	}
	return nil
}

// mockTxManager runs the callback directly without a database.
type mockTxManager struct {
	RunErr error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunErr != nil {
		return m.RunErr
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
