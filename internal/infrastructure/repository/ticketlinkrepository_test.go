package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/infrastructure/persistence/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&models.TicketLinkModel{},
		&models.AlertModel{},
	))
	return database
}

func TestTicketLinkRepository_RefreshRemoteStatus_PersistsCachedFields(t *testing.T) {
	database := openTestDB(t)
	repo := NewTicketLinkRepository(database)
	ctx := context.Background()

	link, err := ticketlink.NewTicketLink("al-1", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, link))

	link.ApplyRemoteStatus(">Closed", true, true, time.Now())
	require.NoError(t, repo.RefreshRemoteStatus(ctx, link))

	reloaded, err := repo.FindByAlertID(ctx, "al-1")
	require.NoError(t, err)
	assert.Equal(t, ">Closed", reloaded.TicketStatus())
	assert.True(t, reloaded.TicketClosed())
	assert.True(t, reloaded.TicketClosedFlag())
	assert.True(t, reloaded.NeedsSync())
	assert.Nil(t, reloaded.ClosedAt())
	require.NotNil(t, reloaded.CheckedAt())
}

func TestTicketLinkRepository_RefreshRemoteStatus_ExplicitCloseWins(t *testing.T) {
	database := openTestDB(t)
	repo := NewTicketLinkRepository(database)
	ctx := context.Background()

	link, err := ticketlink.NewTicketLink("al-1", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, link))

	// A reconciliation pass takes its snapshot before the operator acts.
	snapshots, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	stale := snapshots[0]

	// Operator closes the link while the snapshot is held across the poll.
	current, err := repo.FindByAlertID(ctx, "al-1")
	require.NoError(t, err)
	require.NoError(t, current.Close(time.Now()))
	require.NoError(t, repo.Update(ctx, current))

	stale.ApplyRemoteStatus("Closed", true, true, time.Now())
	err = repo.RefreshRemoteStatus(ctx, stale)
	require.ErrorIs(t, err, ticketlink.ErrLinkAlreadyClosed)

	reloaded, err := repo.FindByAlertID(ctx, "al-1")
	require.NoError(t, err)
	assert.NotNil(t, reloaded.ClosedAt(), "explicit close must survive a reconciliation write")
	assert.False(t, reloaded.NeedsSync(), "a closed link must not be flagged as drifted")
}

func TestTicketLinkRepository_Update_PersistsClose(t *testing.T) {
	database := openTestDB(t)
	repo := NewTicketLinkRepository(database)
	ctx := context.Background()

	link, err := ticketlink.NewTicketLink("al-1", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, link))

	require.NoError(t, link.Close(time.Now()))
	require.NoError(t, repo.Update(ctx, link))

	reloaded, err := repo.FindByAlertID(ctx, "al-1")
	require.NoError(t, err)
	assert.NotNil(t, reloaded.ClosedAt())

	open, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}
