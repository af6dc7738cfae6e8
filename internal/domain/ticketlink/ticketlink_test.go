package ticketlink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openLink(t *testing.T) *TicketLink {
	t.Helper()
	link, err := ReconstructTicketLink(
		1, "al-1", 777,
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		nil, "New", false, false, false, false, nil,
	)
	require.NoError(t, err)
	return link
}

func TestApplyRemoteStatus_FlagsDriftWhileLocallyOpen(t *testing.T) {
	link := openLink(t)
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	link.ApplyRemoteStatus("Closed", true, true, now)

	assert.Equal(t, "Closed", link.TicketStatus())
	assert.True(t, link.TicketClosed())
	assert.True(t, link.TicketClosedFlag())
	assert.False(t, link.TicketStatusError())
	assert.True(t, link.NeedsSync())
	assert.True(t, link.IsOpen())
	require.NotNil(t, link.CheckedAt())
	assert.Equal(t, now, *link.CheckedAt())
}

func TestApplyRemoteStatus_NoDriftWhileTicketOpen(t *testing.T) {
	link := openLink(t)

	link.ApplyRemoteStatus("In Progress", false, false, time.Now())

	assert.False(t, link.NeedsSync())
	assert.False(t, link.TicketClosed())
}

func TestApplyRemoteStatus_ClearsPreviousError(t *testing.T) {
	link := openLink(t)
	link.MarkStatusError(time.Now())
	require.True(t, link.TicketStatusError())

	link.ApplyRemoteStatus("New", false, false, time.Now())

	assert.False(t, link.TicketStatusError())
}

func TestMarkStatusError_KeepsCachedFields(t *testing.T) {
	link := openLink(t)
	link.ApplyRemoteStatus("In Progress", false, false, time.Now())

	at := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	link.MarkStatusError(at)

	assert.True(t, link.TicketStatusError())
	assert.Equal(t, "In Progress", link.TicketStatus())
	assert.False(t, link.TicketClosed())
	require.NotNil(t, link.CheckedAt())
	assert.Equal(t, at, *link.CheckedAt())
}

func TestClose_ClearsNeedsSync(t *testing.T) {
	link := openLink(t)
	link.ApplyRemoteStatus("Closed", true, true, time.Now())
	require.True(t, link.NeedsSync())

	at := time.Now()
	require.NoError(t, link.Close(at))

	assert.False(t, link.NeedsSync())
	assert.False(t, link.IsOpen())
	require.NotNil(t, link.ClosedAt())
	assert.Equal(t, at, *link.ClosedAt())
}

func TestClose_AlreadyClosed(t *testing.T) {
	link := openLink(t)
	require.NoError(t, link.Close(time.Now()))

	err := link.Close(time.Now())
	assert.ErrorIs(t, err, ErrLinkAlreadyClosed)
}

func TestReopen_RestoresDriftFromCachedClosure(t *testing.T) {
	link := openLink(t)
	link.ApplyRemoteStatus("Closed", true, true, time.Now())
	require.NoError(t, link.Close(time.Now()))

	link.Reopen()

	assert.True(t, link.IsOpen())
	// The cached remote state still says closed, so the drift flag returns.
	assert.True(t, link.NeedsSync())
}

func TestReopen_NoDriftWhenRemoteOpen(t *testing.T) {
	link := openLink(t)
	require.NoError(t, link.Close(time.Now()))

	link.Reopen()

	assert.True(t, link.IsOpen())
	assert.False(t, link.NeedsSync())
}

func TestNewTicketLink_Validation(t *testing.T) {
	_, err := NewTicketLink("", 777)
	assert.Error(t, err)

	_, err = NewTicketLink("al-1", 0)
	assert.Error(t, err)

	link, err := NewTicketLink("al-1", 777)
	require.NoError(t, err)
	assert.True(t, link.IsOpen())
	assert.False(t, link.NeedsSync())
}
