package utils

import (
	"bytes"
	"log"

	"github.com/wneessen/go-mail"

	"tifo_back_end/internal/config"
)

// Mailer : abstraction de l'envoi d'e-mails transactionnels, injectée dans
// les services pour que les tests substituent un fake
type Mailer interface {
	Send(to, subject, htmlBody string, pdfAttachment []byte) error
}

// SMTPMailer envoie via go-mail (SMTP avec TLS obligatoire)
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
		ReplyTo:  cfg.EmailReplyTo,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return err
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("facture_tifo.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
