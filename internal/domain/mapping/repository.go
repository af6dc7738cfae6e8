package mapping

import "context"

type Repository interface {
	// Save persists a new mapping. Returns ErrMappingExists when a mapping
	// for the same Slide client ID is already present; the unique index is
	// the authoritative guard against concurrent creates.
	Save(ctx context.Context, m *ClientMapping) error
	Delete(ctx context.Context, slideClientID string) error
	// FindBySlideClientID returns ErrMappingNotFound when absent.
	FindBySlideClientID(ctx context.Context, slideClientID string) (*ClientMapping, error)
	List(ctx context.Context) ([]*ClientMapping, error)
	Count(ctx context.Context) (int64, error)
}
