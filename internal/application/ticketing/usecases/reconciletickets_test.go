package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
)

func openLink(t *testing.T, id uint, alertID string, ticketID int) *ticketlink.TicketLink {
	t.Helper()
	l, err := ticketlink.ReconstructTicketLink(
		id, alertID, ticketID,
		time.Now().Add(-time.Hour), nil,
		"New", false, false, false, false, nil,
	)
	require.NoError(t, err)
	return l
}

func TestReconcileTicketsUseCase_Execute_RefreshesOpenLinks(t *testing.T) {
	links := []*ticketlink.TicketLink{
		openLink(t, 1, "al-1", 100),
		openLink(t, 2, "al-2", 200),
	}

	var mu sync.Mutex
	updated := map[string]*ticketlink.TicketLink{}

	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return links, nil
		},
		RefreshRemoteStatusFunc: func(ctx context.Context, l *ticketlink.TicketLink) error {
			mu.Lock()
			defer mu.Unlock()
			updated[l.AlertID()] = l
			return nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			if ticketID == 200 {
				return &RemoteTicket{ID: 200, StatusName: ">Closed", Closed: true}, nil
			}
			return &RemoteTicket{ID: 100, StatusName: "In Progress"}, nil
		},
	}

	uc := NewReconcileTicketsUseCase(
		linkRepo, &mockAlertRepository{}, gateway, nil, 4, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 0, result.Errored)
	assert.Equal(t, 1, result.NeedsSync)

	require.Len(t, updated, 2)
	assert.Equal(t, "In Progress", updated["al-1"].TicketStatus())
	assert.False(t, updated["al-1"].NeedsSync())
	assert.Equal(t, ">Closed", updated["al-2"].TicketStatus())
	assert.True(t, updated["al-2"].TicketClosed())
	assert.True(t, updated["al-2"].NeedsSync())
	// Drift is only flagged, never acted on.
	assert.True(t, updated["al-2"].IsOpen())
	require.NotNil(t, updated["al-2"].CheckedAt())
}

func TestReconcileTicketsUseCase_Execute_ErrorIsolation(t *testing.T) {
	links := []*ticketlink.TicketLink{
		openLink(t, 1, "al-1", 100),
		openLink(t, 2, "al-2", 200),
		openLink(t, 3, "al-3", 300),
	}

	var mu sync.Mutex
	updated := map[string]*ticketlink.TicketLink{}

	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return links, nil
		},
		RefreshRemoteStatusFunc: func(ctx context.Context, l *ticketlink.TicketLink) error {
			mu.Lock()
			defer mu.Unlock()
			updated[l.AlertID()] = l
			return nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			if ticketID == 200 {
				return nil, errors.New("connectwise 500")
			}
			return &RemoteTicket{ID: ticketID, StatusName: "New"}, nil
		},
	}

	uc := NewReconcileTicketsUseCase(
		linkRepo, &mockAlertRepository{}, gateway, nil, 2, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Errored)

	// The failed link keeps its cached status but is marked errored.
	require.Contains(t, updated, "al-2")
	assert.True(t, updated["al-2"].TicketStatusError())
	assert.Equal(t, "New", updated["al-2"].TicketStatus())
	require.NotNil(t, updated["al-2"].CheckedAt())

	// A subsequent successful poll clears the error flag.
	assert.False(t, updated["al-1"].TicketStatusError())
}

func TestReconcileTicketsUseCase_Execute_ConcurrencyBounded(t *testing.T) {
	var links []*ticketlink.TicketLink
	for i := 1; i <= 10; i++ {
		links = append(links, openLink(t, uint(i), string(rune('a'+i)), i))
	}

	var inFlight, peak int32
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return &RemoteTicket{ID: ticketID, StatusName: "New"}, nil
		},
	}
	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return links, nil
		},
	}

	uc := NewReconcileTicketsUseCase(
		linkRepo, &mockAlertRepository{}, gateway, nil, 3, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, result.Checked)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestReconcileTicketsUseCase_Execute_NotifiesNewDriftOnly(t *testing.T) {
	alreadyDrifted, err := ticketlink.ReconstructTicketLink(
		1, "al-old", 100,
		time.Now().Add(-2*time.Hour), nil,
		">Closed", true, false, false, true, nil,
	)
	require.NoError(t, err)

	links := []*ticketlink.TicketLink{
		alreadyDrifted,
		openLink(t, 2, "al-new", 200),
	}

	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return links, nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			return &RemoteTicket{ID: ticketID, StatusName: "Closed", Closed: true}, nil
		},
	}
	alertRepo := &mockAlertRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*alert.Alert, error) {
			return unlinkedAlert(t, id), nil
		},
	}

	var notified []DriftedLink
	notifier := &mockDriftNotifier{
		NotifyDriftFunc: func(items []DriftedLink) error {
			notified = items
			return nil
		},
	}

	uc := NewReconcileTicketsUseCase(linkRepo, alertRepo, gateway, notifier, 1, 0, &mockLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.NeedsSync)

	// Only the link that newly drifted this sweep is reported.
	require.Len(t, notified, 1)
	assert.Equal(t, "al-new", notified[0].AlertID)
	assert.Equal(t, 200, notified[0].TicketID)
	assert.Equal(t, "Closed", notified[0].TicketStatus)
	assert.Equal(t, "Acme Corp", notified[0].ClientName)
	assert.Equal(t, "backup_failed", notified[0].AlertType)
}

func TestReconcileTicketsUseCase_Execute_DisabledNotifierSkipped(t *testing.T) {
	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return []*ticketlink.TicketLink{openLink(t, 1, "al-1", 100)}, nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			return &RemoteTicket{ID: ticketID, StatusName: "Closed", Closed: true}, nil
		},
	}
	notifier := &mockDriftNotifier{
		EnabledFunc: func() bool { return false },
		NotifyDriftFunc: func(items []DriftedLink) error {
			t.Fatal("disabled notifier must not be called")
			return nil
		},
	}

	uc := NewReconcileTicketsUseCase(linkRepo, &mockAlertRepository{}, gateway, notifier, 1, 0, &mockLogger{})

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)
}

func TestReconcileTicketsUseCase_Execute_ListFailure(t *testing.T) {
	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return nil, errors.New("database gone")
		},
	}

	uc := NewReconcileTicketsUseCase(
		linkRepo, &mockAlertRepository{}, &mockTicketGateway{}, nil, 1, 0, &mockLogger{},
	)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
}

func TestReconcileTicketsUseCase_Execute_ConcurrentCloseWins(t *testing.T) {
	links := []*ticketlink.TicketLink{
		openLink(t, 1, "al-1", 100),
		openLink(t, 2, "al-2", 200),
	}

	var mu sync.Mutex
	updated := map[string]*ticketlink.TicketLink{}

	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return links, nil
		},
		// al-1 was closed by an operator while its poll was in flight.
		RefreshRemoteStatusFunc: func(ctx context.Context, l *ticketlink.TicketLink) error {
			if l.AlertID() == "al-1" {
				return ticketlink.ErrLinkAlreadyClosed
			}
			mu.Lock()
			defer mu.Unlock()
			updated[l.AlertID()] = l
			return nil
		},
		UpdateFunc: func(ctx context.Context, l *ticketlink.TicketLink) error {
			t.Error("reconciliation must never take the broad update path")
			return nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			return &RemoteTicket{ID: ticketID, StatusName: "Closed", Closed: true}, nil
		},
	}

	var notified []DriftedLink
	notifier := &mockDriftNotifier{
		NotifyDriftFunc: func(items []DriftedLink) error {
			notified = items
			return nil
		},
	}

	uc := NewReconcileTicketsUseCase(linkRepo, &mockAlertRepository{}, gateway, notifier, 2, 0, &mockLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// The closed link is dropped from the summary, not treated as a failure.
	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Errored)
	assert.Equal(t, 1, result.NeedsSync)

	require.Len(t, updated, 1)
	require.Contains(t, updated, "al-2")
	require.Len(t, notified, 1)
	assert.Equal(t, "al-2", notified[0].AlertID)
}

func TestReconcileTicketsUseCase_Execute_StaleDriftFlagNotCounted(t *testing.T) {
	// The flag was set on an earlier pass; this pass fails to poll, so the
	// carried-over flag must not show up as detected drift.
	stale, err := ticketlink.ReconstructTicketLink(
		1, "al-1", 100,
		time.Now().Add(-time.Hour), nil,
		">Closed", true, false, false, true, nil,
	)
	require.NoError(t, err)

	linkRepo := &mockTicketLinkRepository{
		ListOpenFunc: func(ctx context.Context) ([]*ticketlink.TicketLink, error) {
			return []*ticketlink.TicketLink{stale}, nil
		},
	}
	gateway := &mockTicketGateway{
		GetTicketFunc: func(ctx context.Context, ticketID int) (*RemoteTicket, error) {
			return nil, errors.New("connectwise 500")
		},
	}

	uc := NewReconcileTicketsUseCase(
		linkRepo, &mockAlertRepository{}, gateway, nil, 1, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Errored)
	assert.Equal(t, 0, result.NeedsSync)
}

func TestReconcileTicketsUseCase_Execute_NoOpenLinks(t *testing.T) {
	uc := NewReconcileTicketsUseCase(
		&mockTicketLinkRepository{}, &mockAlertRepository{}, &mockTicketGateway{},
		nil, 4, 0, &mockLogger{},
	)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Checked)
	assert.Equal(t, 0, result.Updated)
}
