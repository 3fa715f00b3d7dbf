package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Notification is a single transactional email.
type Notification struct {
	To      string
	Subject string
	Message string
}

// Mailer delivers one notification synchronously. Implementations report
// relay errors to the caller; swallowing them is the dispatcher's job.
type Mailer interface {
	Send(n Notification) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(n Notification) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", n.To)
	msg.SetHeader("Subject", n.Subject)
	msg.SetBody("text/html", fmt.Sprintf("<p>%s</p>", n.Message))

	return m.dialer.DialAndSend(msg)
}
