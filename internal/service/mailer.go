package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"
)

// ContactMessage holds one contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer delivers contact-form submissions to the site operator. One message
// per call, no retries, no queueing: a provider failure is the caller's
// failure.
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// SMTPConfig holds the outbound email settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string // authenticated sender address
	Recipient string // fixed operator address every submission goes to
}

// SMTPMailer sends contact-form email over SMTP. The submitter's address is
// set as Reply-To so the operator can answer directly; the From address stays
// the authenticated account, which most providers require.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendContact formats and dispatches a single email for the submission.
func (m *SMTPMailer) SendContact(ctx context.Context, cm ContactMessage) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(fmt.Sprintf("%s (%s)", cm.Name, cm.Email), m.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.cfg.Recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := msg.ReplyTo(cm.Email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	msg.Subject("New Contact Form Submission from " + cm.Name)

	body, err := renderContactBody(cm)
	if err != nil {
		return err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

// contactTemplate escapes all submitter-controlled values before they reach
// the HTML body.
var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Message:</strong></p>
    <p style="background-color: white; padding: 15px; border-radius: 5px;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    This email was sent from your portfolio contact form. Reply to respond directly to {{.Email}}.
  </p>
</div>`))

func renderContactBody(cm ContactMessage) (string, error) {
	if cm.Phone == "" {
		cm.Phone = "Not provided"
	}
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, cm); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return buf.String(), nil
}
