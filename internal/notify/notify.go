// Package notify is the ephemeral feedback surface: short leveled messages
// reporting the outcome of user actions, dropped automatically after a
// fixed lifetime.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notifier is the surface the rest of the client talks to.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// Toast is one transient message.
type Toast struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Center collects toasts, forwards each to an optional sink (the terminal
// printer in production) and expires them after ttl.
type Center struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
	sink   func(Toast)
}

// Option adjusts a Center during construction.
type Option func(*Center)

// WithClock replaces the time source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithSink registers a callback invoked once per toast as it is shown.
func WithSink(sink func(Toast)) Option {
	return func(c *Center) { c.sink = sink }
}

// NewCenter builds a Center whose toasts live for ttl.
func NewCenter(ttl time.Duration, opts ...Option) *Center {
	c := &Center{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Center) Success(msg string) { c.push(LevelSuccess, msg) }
func (c *Center) Error(msg string)   { c.push(LevelError, msg) }
func (c *Center) Warning(msg string) { c.push(LevelWarning, msg) }
func (c *Center) Info(msg string)    { c.push(LevelInfo, msg) }

func (c *Center) push(level Level, msg string) {
	c.mu.Lock()
	toast := Toast{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   msg,
		CreatedAt: c.now(),
	}
	c.prune()
	c.toasts = append(c.toasts, toast)
	sink := c.sink
	c.mu.Unlock()

	if sink != nil {
		sink(toast)
	}
}

// Active returns the toasts that have not yet expired.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// prune drops expired toasts. Caller holds the lock.
func (c *Center) prune() {
	cutoff := c.now().Add(-c.ttl)
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if t.CreatedAt.After(cutoff) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}
