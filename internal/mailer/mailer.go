// Package mailer sends mail over plain SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type SMTPMailer struct {
	cfg Config
}

func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	msg := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", m.cfg.From, to, subject, body))
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	log.Info().
		Str("to", to).
		Str("subject", subject).
		Msg("sending mail")
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}
