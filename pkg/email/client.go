package email

import (
	"time"

	"gopkg.in/mail.v2"
)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Configured reports whether host, user and sender address are set.
func (c *Client) Configured() bool {
	return c.smtpHost != "" && c.username != "" && c.from != ""
}

// Send delivers one message. When html is set the body is attached as an
// HTML alternative to the plain text part.
func (c *Client) Send(to, subject, body string, html bool) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)
	if html {
		message.AddAlternative("text/html", body)
	}

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	if c.timeout > 0 {
		dialer.Timeout = c.timeout
	}

	return dialer.DialAndSend(message)
}
