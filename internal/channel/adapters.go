package channel

import (
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/pkg/email"
)

// simulated is a placeholder sender that logs and sleeps for a fixed latency.
type simulated struct {
	label   string
	latency time.Duration
}

func (s *simulated) Send(to string, msg string) error {
	zlog.Logger.Info().Str("channel", s.label).Str("to", to).Str("message", msg).Msg("sending notification")
	time.Sleep(s.latency)
	return nil
}

// NewSMS returns the simulated SMS sender.
func NewSMS(latency time.Duration) Sender {
	return &simulated{label: "sms", latency: latency}
}

// NewPush returns the simulated push sender.
func NewPush(latency time.Duration) Sender {
	return &simulated{label: "push", latency: latency}
}

// Email renders a MIME message for every send and then simulates delivery latency.
type Email struct {
	client  *email.Client
	latency time.Duration
}

// NewEmail returns the simulated email sender.
func NewEmail(from string, latency time.Duration) *Email {
	return &Email{
		client:  email.NewClient(from, nil),
		latency: latency,
	}
}

func (e *Email) Send(to string, msg string) error {
	zlog.Logger.Info().Str("channel", "email").Str("to", to).Str("message", msg).Msg("sending notification")

	if err := e.client.Send(to, msg); err != nil {
		return err
	}

	time.Sleep(e.latency)
	return nil
}
