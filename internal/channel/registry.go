// Package channel maps delivery channel names to the senders that perform delivery.
package channel

import "github.com/aliskhannn/notification-dispatcher/internal/config"

//go:generate mockgen -source=registry.go -destination=../mocks/channel/mock.go -package=mocks

// Sender delivers a message to a single recipient over one channel.
type Sender interface {
	Send(to string, msg string) error
}

// Registry is a fixed mapping from channel name to Sender.
type Registry struct {
	senders map[string]Sender
}

// NewRegistry copies senders into a new Registry. Later changes to the map are not observed.
func NewRegistry(senders map[string]Sender) *Registry {
	r := &Registry{senders: make(map[string]Sender, len(senders))}
	for name, s := range senders {
		r.senders[name] = s
	}

	return r
}

// Default returns the registry with the built-in simulated channels.
func Default(cfg config.Channels) *Registry {
	return NewRegistry(map[string]Sender{
		"email": NewEmail(cfg.EmailFrom, cfg.EmailLatency),
		"sms":   NewSMS(cfg.SMSLatency),
		"push":  NewPush(cfg.PushLatency),
	})
}

// Lookup returns the sender registered under the exact channel name.
func (r *Registry) Lookup(name string) (Sender, bool) {
	s, ok := r.senders[name]
	return s, ok
}
