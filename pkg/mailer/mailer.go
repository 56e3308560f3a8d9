package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers outbound mail. Delivery is fire-and-forget from the
// caller's point of view: failures are reported but never block or roll
// back the business operation that triggered the send.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func NewSMTP(addr, from, user, pass string) *SMTPMailer {
	m := &SMTPMailer{Addr: addr, From: from}
	if user != "" {
		host := addr
		if i := strings.IndexByte(addr, ':'); i >= 0 {
			host = addr[:i]
		}
		m.Auth = smtp.PlainAuth("", user, pass, host)
	}
	return m
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, to, subject, body)
	return smtp.SendMail(m.Addr, m.Auth, m.From, []string{to}, []byte(msg))
}

// Nop discards mail; used when SMTP_ADDR is not configured.
type Nop struct{}

func (Nop) Send(to, subject, body string) error { return nil }
