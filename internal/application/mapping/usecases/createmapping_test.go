package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidebridge/internal/domain/mapping"
	apperrors "slidebridge/internal/shared/errors"
)

func TestCreateMappingUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockMappingRepository{
		SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
			return cm.SetID(7)
		},
	}

	useCase := NewCreateMappingUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateMappingCommand{
		SlideClientID:   "c1",
		SlideClientName: "Acme Corp",
		ConnectWiseID:   10,
		ConnectWiseName: "Acme Corporation",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "c1", result.SlideClientID)
	assert.Equal(t, 10, result.ConnectWiseID)
	assert.NotZero(t, result.CreatedAt)
}

func TestCreateMappingUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		command CreateMappingCommand
	}{
		{
			name: "missing slide client id",
			command: CreateMappingCommand{
				SlideClientName: "Acme Corp",
				ConnectWiseID:   10,
				ConnectWiseName: "Acme Corp",
			},
		},
		{
			name: "missing connectwise id",
			command: CreateMappingCommand{
				SlideClientID:   "c1",
				SlideClientName: "Acme Corp",
				ConnectWiseName: "Acme Corp",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateMappingUseCase(&mockMappingRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

func TestCreateMappingUseCase_Execute_Duplicate(t *testing.T) {
	mockRepo := &mockMappingRepository{
		SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
			return mapping.ErrMappingExists
		},
	}

	useCase := NewCreateMappingUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateMappingCommand{
		SlideClientID:   "c1",
		SlideClientName: "Acme Corp",
		ConnectWiseID:   10,
		ConnectWiseName: "Acme Corp",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}
