package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	tc := TemplateContext{
		AlertType:     "backup_failed",
		ClientName:    "Acme Corp",
		DeviceName:    "ACME-SRV01",
		AlertMessage:  "Backup failed: disk full",
		Timestamp:     ts,
		AgentName:     "acme-agent",
		AgentHostname: "srv01.acme.local",
	}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "all tokens",
			template: "{{alert_type}}|{{client_name}}|{{device_name}}|{{alert_message}}|{{alert_timestamp}}|{{agent_name}}|{{agent_hostname}}",
			expected: "backup_failed|Acme Corp|ACME-SRV01|Backup failed: disk full|2025-03-14 09:26:53|acme-agent|srv01.acme.local",
		},
		{
			name:     "summary style",
			template: "Slide Alert: {{alert_type}} for {{client_name}}",
			expected: "Slide Alert: backup_failed for Acme Corp",
		},
		{
			name:     "repeated token",
			template: "{{client_name}} / {{client_name}}",
			expected: "Acme Corp / Acme Corp",
		},
		{
			name:     "unknown token passes through",
			template: "{{alert_type}} {{bogus_token}}",
			expected: "backup_failed {{bogus_token}}",
		},
		{
			name:     "no tokens",
			template: "plain text",
			expected: "plain text",
		},
		{
			name:     "empty template",
			template: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderTemplate(tt.template, tc))
		})
	}
}

func TestRenderTemplate_EmptyValues(t *testing.T) {
	tc := TemplateContext{Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	result := RenderTemplate("[{{client_name}}] {{alert_message}} at {{alert_timestamp}}", tc)

	assert.Equal(t, "[]  at 2025-01-01 00:00:00", result)
}
