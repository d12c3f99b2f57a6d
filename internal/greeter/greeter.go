// Package greeter formats greetings and hands them to a host notifier.
package greeter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNoNotifier is returned by Greet when no notifier was supplied.
var ErrNoNotifier = errors.New("greeter: no notifier available")

// Notifier delivers a message to the host, e.g. by showing an alert.
type Notifier interface {
	Notify(message string) error
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
type NotifierFunc func(message string) error

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) error {
	return f(message)
}

// Option configures a Greeter.
type Option func(*Greeter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Greeter) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Greeter sends greetings through a Notifier. It holds no mutable state and
// is safe for concurrent use as long as the Notifier is.
type Greeter struct {
	notifier Notifier
	logger   *zap.Logger
}

// New creates a Greeter that delivers through n.
func New(n Notifier, opts ...Option) *Greeter {
	g := &Greeter{
		notifier: n,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Message returns the greeting for name. The name is used verbatim.
func Message(name string) string {
	return "Hello, " + name + "!"
}

// Greet builds the greeting for name and delivers it exactly once.
func (g *Greeter) Greet(name string) error {
	if g.notifier == nil {
		return ErrNoNotifier
	}

	msg := Message(name)
	g.logger.Debug("delivering greeting", zap.String("name", name), zap.Int("bytes", len(msg)))

	if err := g.notifier.Notify(msg); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
