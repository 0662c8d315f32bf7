// Package email renders notification messages as MIME mail.
//
// The dispatcher does not dial SMTP. The composed message is written to the
// configured writer, which is io.Discard unless a caller wants to capture it.
package email

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

// Client composes plain-text notification emails.
type Client struct {
	from    string    // sender address put in the From header
	subject string    // subject line of every message
	out     io.Writer // sink for the rendered message
}

// NewClient creates a Client that renders messages into out.
// A nil out discards the rendered bytes.
func NewClient(from string, out io.Writer) *Client {
	if out == nil {
		out = io.Discard
	}

	return &Client{
		from:    from,
		subject: "Notification",
		out:     out,
	}
}

// Send builds the message for the recipient and writes it to the client's sink.
func (c *Client) Send(to string, msg string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", c.subject)

	message.SetBody("text/plain", msg)

	// WriteTo does not reliably report errors from the underlying writer.
	w := &errWriter{w: c.out}
	if _, err := message.WriteTo(w); err != nil {
		return fmt.Errorf("render email: %w", err)
	}
	if w.err != nil {
		return fmt.Errorf("render email: %w", w.err)
	}

	return nil
}

// errWriter remembers the first write error and refuses further writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
