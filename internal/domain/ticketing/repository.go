package ticketing

import "context"

type ConfigRepository interface {
	// Get returns the active config, or nil when none has been saved.
	Get(ctx context.Context) (*Config, error)
	// Save replaces the singleton wholesale.
	Save(ctx context.Context, c *Config) error
}
