package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidebridge/internal/domain/mapping"
)

func TestListMappingsUseCase_Execute_MergesDirectoryAndMappings(t *testing.T) {
	m1, err := mapping.ReconstructClientMapping(1, "c1", "Acme Corp", 10, "Acme Corporation", time.Now())
	require.NoError(t, err)

	mockRepo := &mockMappingRepository{
		ListFunc: func(ctx context.Context) ([]*mapping.ClientMapping, error) {
			return []*mapping.ClientMapping{m1}, nil
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return []SlideClient{
				{ID: "c2", Name: "Beta LLC"},
				{ID: "c1", Name: "Acme Corp"},
			}, nil
		},
	}

	useCase := NewListMappingsUseCase(mockRepo, slideDir, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	// Sorted by normalized client name.
	assert.Equal(t, "c1", result.Rows[0].SlideClientID)
	assert.True(t, result.Rows[0].Mapped)
	assert.Equal(t, 10, result.Rows[0].ConnectWiseID)
	assert.Equal(t, "Acme Corporation", result.Rows[0].ConnectWiseName)

	assert.Equal(t, "c2", result.Rows[1].SlideClientID)
	assert.False(t, result.Rows[1].Mapped)
	assert.Zero(t, result.Rows[1].ConnectWiseID)
	assert.Nil(t, result.Rows[1].CreatedAt)
}

func TestListMappingsUseCase_Execute_KeepsOrphanedMappings(t *testing.T) {
	m1, err := mapping.ReconstructClientMapping(1, "gone", "Departed Inc", 99, "Departed Inc", time.Now())
	require.NoError(t, err)

	mockRepo := &mockMappingRepository{
		ListFunc: func(ctx context.Context) ([]*mapping.ClientMapping, error) {
			return []*mapping.ClientMapping{m1}, nil
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return []SlideClient{{ID: "c2", Name: "Beta LLC"}}, nil
		},
	}

	useCase := NewListMappingsUseCase(mockRepo, slideDir, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "gone", result.Rows[1].SlideClientID)
	assert.True(t, result.Rows[1].Mapped)
}

func TestListMappingsUseCase_Execute_DirectoryUnavailable(t *testing.T) {
	m1, err := mapping.ReconstructClientMapping(1, "c1", "Acme Corp", 10, "Acme Corp", time.Now())
	require.NoError(t, err)

	mockRepo := &mockMappingRepository{
		ListFunc: func(ctx context.Context) ([]*mapping.ClientMapping, error) {
			return []*mapping.ClientMapping{m1}, nil
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return nil, errors.New("timeout")
		},
	}

	useCase := NewListMappingsUseCase(mockRepo, slideDir, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "c1", result.Rows[0].SlideClientID)
	assert.True(t, result.Rows[0].Mapped)
}
