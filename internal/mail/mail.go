// Package mail sends the contact-form relay through SMTP. One attempt per
// call, no retry.
package mail

import "gopkg.in/gomail.v2"

// Sender delivers one plain-text message to the configured recipient.
type Sender interface {
	Send(subject, text string) error
	From() string
	To() string
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTP(host string, port int, username, password, to string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
		to:     to,
	}
}

func (s *SMTP) From() string { return s.from }
func (s *SMTP) To() string   { return s.to }

func (s *SMTP) Send(subject, text string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	return s.dialer.DialAndSend(m)
}
