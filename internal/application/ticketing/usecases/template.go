package usecases

import (
	"strings"
	"time"
)

// timestampLayout is the format used for the {{alert_timestamp}} token.
const timestampLayout = "2006-01-02 15:04:05"

// TemplateContext carries the values substituted into ticket templates.
type TemplateContext struct {
	AlertType     string
	ClientName    string
	DeviceName    string
	AlertMessage  string
	Timestamp     time.Time
	AgentName     string
	AgentHostname string
}

// RenderTemplate substitutes the supported tokens in a template. Unknown
// tokens pass through verbatim so operators notice typos instead of getting
// silently empty text.
func RenderTemplate(template string, tc TemplateContext) string {
	replacer := strings.NewReplacer(
		"{{alert_type}}", tc.AlertType,
		"{{client_name}}", tc.ClientName,
		"{{device_name}}", tc.DeviceName,
		"{{alert_message}}", tc.AlertMessage,
		"{{alert_timestamp}}", tc.Timestamp.Format(timestampLayout),
		"{{agent_name}}", tc.AgentName,
		"{{agent_hostname}}", tc.AgentHostname,
	)
	return replacer.Replace(template)
}
