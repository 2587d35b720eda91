package util

import (
	"fmt"
	"log/slog"

	"github.com/sunthewhat/quick-cert-api/type/shared"
	"gopkg.in/gomail.v2"
)

// Mailer delivers generated certificates as e-mail attachments.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(config *shared.Config) (*Mailer, error) {
	if !config.MailEnabled() {
		return nil, fmt.Errorf("mail configuration is incomplete")
	}

	port := 587
	if config.MailPort != nil {
		port = *config.MailPort
	}

	pass := ""
	if config.MailPass != nil {
		pass = *config.MailPass
	}

	from := *config.MailUser
	if config.MailFrom != nil && *config.MailFrom != "" {
		from = *config.MailFrom
	}

	return &Mailer{
		dialer: gomail.NewDialer(*config.MailHost, port, *config.MailUser, pass),
		from:   from,
	}, nil
}

func (m *Mailer) SendCertificate(recipient string, certId string, pdfPath string) error {
	if err := m.dialer.DialAndSend(certificateMessage(m.from, recipient, certId, pdfPath)); err != nil {
		slog.Error("Error Sending Mail", "error", err, "cert_id", certId)
		return err
	}

	slog.Info("Email sent successfully", "recipient", recipient, "cert_id", certId)
	return nil
}

func certificateMessage(from string, recipient string, certId string, pdfPath string) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", from)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", "Your Certificate "+certId)
	mailer.SetBody("text/html", fmt.Sprintf(`
		<p>Hello,</p>
		<p>Please find your certificate attached to this email.</p>
		<p>Certificate ID: <strong>%s</strong></p>
	`, certId))

	mailer.Attach(pdfPath, gomail.Rename(certId+".pdf"), gomail.SetHeader(map[string][]string{
		"Content-Type": {"application/pdf"},
	}))

	return mailer
}
