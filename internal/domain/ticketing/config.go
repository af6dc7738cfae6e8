package ticketing

import (
	"fmt"
	"time"
)

// Default templates applied when no configuration has been saved yet.
const (
	DefaultSummaryTemplate = "Slide Alert: {{alert_type}} for {{client_name}}"
	DefaultBodyTemplate    = "Alert Details:\n\n" +
		"Client: {{client_name}}\n" +
		"Device: {{device_name}}\n" +
		"Alert Type: {{alert_type}}\n" +
		"Message: {{alert_message}}\n" +
		"Timestamp: {{alert_timestamp}}\n\n" +
		"This ticket was automatically created by the Slide-ConnectWise integration."
)

// Config is the single active ticket-creation target and template set.
// It is replaced wholesale on every save; no history is kept.
type Config struct {
	BoardID         int
	BoardName       string
	StatusID        int
	StatusName      string
	PriorityID      int
	PriorityName    string
	TypeID          int
	TypeName        string
	SummaryTemplate string
	BodyTemplate    string
	AutoAssignTech  bool
	TechnicianID    *int
	TechnicianName  string
	UpdatedAt       time.Time
}

// DefaultConfig returns the empty default served before any save.
func DefaultConfig() *Config {
	return &Config{
		SummaryTemplate: DefaultSummaryTemplate,
		BodyTemplate:    DefaultBodyTemplate,
	}
}

// Validate reports missing target identifiers. Validation failures are
// reported, never silently coerced.
func (c *Config) Validate() error {
	if c.BoardID == 0 {
		return fmt.Errorf("board is required")
	}
	if c.StatusID == 0 {
		return fmt.Errorf("status is required")
	}
	if c.PriorityID == 0 {
		return fmt.Errorf("priority is required")
	}
	if c.TypeID == 0 {
		return fmt.Errorf("type is required")
	}
	if c.AutoAssignTech && (c.TechnicianID == nil || *c.TechnicianID == 0) {
		return fmt.Errorf("technician is required when auto-assign is enabled")
	}
	return nil
}

// IsComplete reports whether ticket creation may proceed with this config.
func (c *Config) IsComplete() bool {
	return c.Validate() == nil
}
