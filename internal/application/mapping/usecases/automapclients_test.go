package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidebridge/internal/domain/mapping"
	apperrors "slidebridge/internal/shared/errors"
)

func TestAutoMapClientsUseCase_Execute_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name          string
		clients       []SlideClient
		companies     []Company
		wantCreated   int
		wantNoMatch   int
		wantAmbiguous int
	}{
		{
			name:        "exact name match creates mapping",
			clients:     []SlideClient{{ID: "c1", Name: "Acme Corp"}},
			companies:   []Company{{ID: 10, Name: "Acme Corp"}},
			wantCreated: 1,
		},
		{
			name:        "match is case insensitive",
			clients:     []SlideClient{{ID: "c1", Name: "ACME CORP"}},
			companies:   []Company{{ID: 10, Name: "acme corp"}},
			wantCreated: 1,
		},
		{
			name:        "match collapses interior whitespace",
			clients:     []SlideClient{{ID: "c1", Name: "  Acme   Corp  "}},
			companies:   []Company{{ID: 10, Name: "Acme Corp"}},
			wantCreated: 1,
		},
		{
			name:        "partial name never matches",
			clients:     []SlideClient{{ID: "c1", Name: "Acme"}},
			companies:   []Company{{ID: 10, Name: "Acme Corp"}},
			wantNoMatch: 1,
		},
		{
			name:        "no companies means no matches",
			clients:     []SlideClient{{ID: "c1", Name: "Acme Corp"}},
			companies:   nil,
			wantNoMatch: 1,
		},
		{
			name:          "duplicate company names pick lowest id and flag ambiguity",
			clients:       []SlideClient{{ID: "c1", Name: "Acme Corp"}},
			companies:     []Company{{ID: 42, Name: "Acme Corp"}, {ID: 10, Name: "Acme Corp"}},
			wantCreated:   1,
			wantAmbiguous: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved []*mapping.ClientMapping
			mockRepo := &mockMappingRepository{
				SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
					if err := cm.SetID(uint(len(saved) + 1)); err != nil {
						return err
					}
					saved = append(saved, cm)
					return nil
				},
			}
			slideDir := &mockSlideDirectory{
				ClientsFunc: func(ctx context.Context) ([]SlideClient, error) { return tt.clients, nil },
			}
			companyDir := &mockCompanyDirectory{
				CompaniesFunc: func(ctx context.Context) ([]Company, error) { return tt.companies, nil },
			}

			useCase := NewAutoMapClientsUseCase(mockRepo, slideDir, companyDir, &mockLogger{})
			result, err := useCase.Execute(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, result.Created)
			assert.Equal(t, tt.wantNoMatch, result.NoMatch)
			assert.Equal(t, tt.wantAmbiguous, result.Ambiguous)
			assert.Len(t, saved, tt.wantCreated)

			if tt.wantAmbiguous > 0 {
				require.Len(t, saved, 1)
				assert.Equal(t, 10, saved[0].ConnectWiseID())
			}
		})
	}
}

func TestAutoMapClientsUseCase_Execute_SkipsMappedClients(t *testing.T) {
	existing, err := mapping.ReconstructClientMapping(1, "c1", "Acme Corp", 10, "Acme Corp", time.Now())
	require.NoError(t, err)

	saveCalls := 0
	mockRepo := &mockMappingRepository{
		FindBySlideClientIDFunc: func(ctx context.Context, slideClientID string) (*mapping.ClientMapping, error) {
			if slideClientID == "c1" {
				return existing, nil
			}
			return nil, mapping.ErrMappingNotFound
		},
		SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
			saveCalls++
			return cm.SetID(uint(saveCalls + 1))
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return []SlideClient{{ID: "c1", Name: "Acme Corp"}, {ID: "c2", Name: "Beta LLC"}}, nil
		},
	}
	companyDir := &mockCompanyDirectory{
		CompaniesFunc: func(ctx context.Context) ([]Company, error) {
			return []Company{{ID: 10, Name: "Acme Corp"}, {ID: 11, Name: "Beta LLC"}}, nil
		},
	}

	useCase := NewAutoMapClientsUseCase(mockRepo, slideDir, companyDir, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.AlreadyMapped)
	assert.Equal(t, 1, saveCalls)
}

func TestAutoMapClientsUseCase_Execute_RemoteFailure(t *testing.T) {
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return nil, errors.New("connection refused")
		},
	}

	useCase := NewAutoMapClientsUseCase(&mockMappingRepository{}, slideDir, &mockCompanyDirectory{}, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsRemoteError(err))
}

func TestAutoMapClientsUseCase_Execute_ConcurrentSaveLosesRace(t *testing.T) {
	mockRepo := &mockMappingRepository{
		SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
			return mapping.ErrMappingExists
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return []SlideClient{{ID: "c1", Name: "Acme Corp"}}, nil
		},
	}
	companyDir := &mockCompanyDirectory{
		CompaniesFunc: func(ctx context.Context) ([]Company, error) {
			return []Company{{ID: 10, Name: "Acme Corp"}}, nil
		},
	}

	useCase := NewAutoMapClientsUseCase(mockRepo, slideDir, companyDir, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.AlreadyMapped)
}

func TestAutoMapClientsUseCase_Execute_Idempotent(t *testing.T) {
	stored := make(map[string]*mapping.ClientMapping)
	mockRepo := &mockMappingRepository{
		SaveFunc: func(ctx context.Context, cm *mapping.ClientMapping) error {
			if _, ok := stored[cm.SlideClientID()]; ok {
				return mapping.ErrMappingExists
			}
			if err := cm.SetID(uint(len(stored) + 1)); err != nil {
				return err
			}
			stored[cm.SlideClientID()] = cm
			return nil
		},
		FindBySlideClientIDFunc: func(ctx context.Context, slideClientID string) (*mapping.ClientMapping, error) {
			if cm, ok := stored[slideClientID]; ok {
				return cm, nil
			}
			return nil, mapping.ErrMappingNotFound
		},
	}
	slideDir := &mockSlideDirectory{
		ClientsFunc: func(ctx context.Context) ([]SlideClient, error) {
			return []SlideClient{{ID: "c1", Name: "Acme Corp"}, {ID: "c2", Name: "No Match Ltd"}}, nil
		},
	}
	companyDir := &mockCompanyDirectory{
		CompaniesFunc: func(ctx context.Context) ([]Company, error) {
			return []Company{{ID: 10, Name: "Acme Corp"}}, nil
		},
	}

	useCase := NewAutoMapClientsUseCase(mockRepo, slideDir, companyDir, &mockLogger{})

	first, err := useCase.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	firstMapping := stored["c1"]

	second, err := useCase.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.AlreadyMapped)
	assert.Equal(t, 1, second.NoMatch)
	assert.Len(t, stored, 1)
	assert.Same(t, firstMapping, stored["c1"])
}
