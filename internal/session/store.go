// Package session owns the authenticated identity and its inactivity
// clock. The serialized session is the single source of truth for "is a
// user logged in"; it is persisted under one key in the local state db and
// survives restarts. The last-activity timestamp is deliberately kept in
// memory only.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/notify"
	"github.com/campusmind/client/internal/state"
)

const sessionKey = "session"

// ExpiredMessage is the notification text emitted when the inactivity
// timeout ends a session.
const ExpiredMessage = "Session expired. Please login again."

// Store holds the current session and enforces the inactivity timeout.
// It is the only component allowed to end a session without an explicit
// user action.
type Store struct {
	repo     state.Repository
	log      logging.Logger
	notifier notify.Notifier
	timeout  time.Duration
	now      func() time.Time

	mu           sync.Mutex
	current      *models.Session
	lastActivity time.Time
	onClear      []func()
}

// Option adjusts a Store during construction.
type Option func(*Store)

// WithClock replaces the time source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithNotifier wires the surface that receives the session-expired message.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// NewStore builds a Store persisting through repo. timeout is the
// inactivity window after which CheckTimeout force-ends the session.
func NewStore(repo state.Repository, timeout time.Duration, log logging.Logger, opts ...Option) *Store {
	s := &Store{repo: repo, timeout: timeout, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnClear registers a hook invoked whenever the session ends, however it
// ends. The directory cache registers here so its lifetime matches the
// session's.
func (s *Store) OnClear(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = append(s.onClear, fn)
}

// Restore reconstructs the session from persisted storage. Absent or
// malformed data is not an error: it simply means nobody is logged in.
func (s *Store) Restore(ctx context.Context) *models.Session {
	data, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(ctx, "discarding malformed persisted session", "error", err)
		return nil
	}
	if sess.UserID == 0 {
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.lastActivity = s.now()
	s.mu.Unlock()
	return &sess
}

// Save sets the current session and persists it.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, sessionKey, data); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &sess
	s.lastActivity = s.now()
	s.mu.Unlock()
	return nil
}

// Clear drops the current session, its persisted copy and any state hooked
// to the session lifetime.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	hooks := make([]func(), len(s.onClear))
	copy(hooks, s.onClear)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	return s.repo.Delete(ctx, sessionKey)
}

// IsActive reports whether a session is currently held.
func (s *Store) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Current returns the held session, or nil.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Touch records user activity. Call sites invoke it on any interaction
// while a session is active; it is a no-op otherwise.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.lastActivity = s.now()
}

// CheckTimeout ends the session when the inactivity window has elapsed,
// notifying the feedback surface. It reports whether the session expired
// on this check.
func (s *Store) CheckTimeout(ctx context.Context) bool {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return false
	}
	idle := s.now().Sub(s.lastActivity)
	s.mu.Unlock()

	if idle <= s.timeout {
		return false
	}

	s.log.Info(ctx, "session expired after inactivity", "idle", idle)
	if err := s.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear expired session", "error", err)
	}
	if s.notifier != nil {
		s.notifier.Warning(ExpiredMessage)
	}
	return true
}

// StartInactivityWatcher runs CheckTimeout once per interval until ctx is
// cancelled. onExpire, when non-nil, is invoked after an expiry so the
// caller can redraw the login state.
func (s *Store) StartInactivityWatcher(ctx context.Context, interval time.Duration, onExpire func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if s.CheckTimeout(ctx) && onExpire != nil {
				onExpire()
			}
		case <-ctx.Done():
			return
		}
	}
}
