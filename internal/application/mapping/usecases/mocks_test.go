package usecases

import (
	"context"

	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/shared/logger"
)

type mockMappingRepository struct {
	SaveFunc                func(ctx context.Context, m *mapping.ClientMapping) error
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

type mockSlideDirectory struct {
	ClientsFunc func(ctx context.Context) ([]SlideClient, error)
}

func (m *mockSlideDirectory) Clients(ctx context.Context) ([]SlideClient, error) {
	if m.ClientsFunc != nil {
		return m.ClientsFunc(ctx)
	}
	return nil, nil
}

type mockCompanyDirectory struct {
	CompaniesFunc func(ctx context.Context) ([]Company, error)
}

func (m *mockCompanyDirectory) Companies(ctx context.Context) ([]Company, error) {
	if m.CompaniesFunc != nil {
		return m.CompaniesFunc(ctx)
	}
	return nil, nil
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
