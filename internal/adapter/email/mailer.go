package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"todoapi/internal/core/port"
	"todoapi/internal/shared"
)

// SMTPMailer delivers mail over plain SMTP with optional PLAIN auth.
type SMTPMailer struct {
	cfg       shared.SMTPConfig
	templates *template.Template
}

func NewSMTPMailer(cfg shared.SMTPConfig) (*SMTPMailer, error) {
	tmpl, err := template.New("emails").Parse(emailTemplates)

	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &SMTPMailer{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

func (m *SMTPMailer) SendVerificationMail(to, name string, otp int) error {
	body, err := m.render("verification", verificationData{
		Username: name,
		OTP:      otp,
		AppName:  m.cfg.FromName,
	})

	if err != nil {
		return err
	}

	return m.send(to, "Verify Your Registration", body)
}

func (m *SMTPMailer) SendPasswordResetMail(to, name, link string) error {
	body, err := m.render("password_reset", passwordResetData{
		Username:  name,
		ResetLink: link,
		AppName:   m.cfg.FromName,
	})

	if err != nil {
		return err
	}

	return m.send(to, "Reset Your Password", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	from := m.cfg.From
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

func (m *SMTPMailer) render(name string, data any) (string, error) {
	var buf bytes.Buffer

	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}

	return buf.String(), nil
}

// LogMailer writes mail contents to the log instead of delivering them.
// Used in development, where no SMTP server is configured.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerificationMail(to, name string, otp int) error {
	m.logger.Info().
		Str("to", to).
		Str("name", name).
		Int("otp", otp).
		Msg("verification mail (not delivered)")

	return nil
}

func (m *LogMailer) SendPasswordResetMail(to, name, link string) error {
	m.logger.Info().
		Str("to", to).
		Str("name", name).
		Str("link", link).
		Msg("password reset mail (not delivered)")

	return nil
}

var (
	_ port.Mailer = (*SMTPMailer)(nil)
	_ port.Mailer = (*LogMailer)(nil)
)
