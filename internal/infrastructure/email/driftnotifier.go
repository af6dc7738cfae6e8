package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"slidebridge/internal/shared/config"
)

// DriftItem describes one ticket link that reconciliation found out of sync.
type DriftItem struct {
	AlertID      string
	TicketID     int
	TicketStatus string
	ClientName   string
	AlertType    string
}

// DriftNotifier emails operators when reconciliation flags ticket links with
// remote tickets closed but the local record still open. Notification is
// best-effort; a send failure never fails the reconcile run.
type DriftNotifier struct {
	cfg    *config.NotifyConfig
	dialer *gomail.Dialer
}

func NewDriftNotifier(cfg *config.NotifyConfig) *DriftNotifier {
	return &DriftNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
	}
}

// Enabled reports whether notifications are configured.
func (n *DriftNotifier) Enabled() bool {
	return n.cfg.Enabled && n.cfg.SMTPHost != "" && n.cfg.ToAddress != ""
}

// SendDriftReport emails the list of newly drifted ticket links.
func (n *DriftNotifier) SendDriftReport(items []DriftItem) error {
	if len(items) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Ticket sync drift: %d ticket(s) closed remotely but open locally", len(items))

	var plain strings.Builder
	var html strings.Builder

	plain.WriteString("The following tickets are closed in ConnectWise but their alerts are still open:\n\n")
	html.WriteString("<html><body><h2>Ticket Sync Drift</h2>")
	html.WriteString("<p>The following tickets are closed in ConnectWise but their alerts are still open:</p><ul>")

	for _, item := range items {
		line := fmt.Sprintf("Ticket #%d (%s): alert %s, %s, client %s",
			item.TicketID, item.TicketStatus, item.AlertID, item.AlertType, item.ClientName)
		plain.WriteString(line + "\n")
		html.WriteString("<li>" + line + "</li>")
	}

	plain.WriteString("\nReview and close the corresponding alerts in the dashboard.\n")
	html.WriteString("</ul><p>Review and close the corresponding alerts in the dashboard.</p></body></html>")

	return n.sendEmail(n.cfg.ToAddress, subject, html.String(), plain.String())
}

func (n *DriftNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
