// Package session keeps one filter state manager per browsing session and
// expires sessions that have been idle too long.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KurtErsin/perfume/internal/event"
	"github.com/KurtErsin/perfume/internal/filter"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session: not found")

// Default timings used when the config leaves them unset.
const (
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Clock abstracts time for expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Session is one browsing session.
type Session struct {
	ID      string
	Filters *filter.Manager

	lastSeen time.Time
	unsub    func()
}

// Store is a concurrency-safe map of session ID to Session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	idle     time.Duration
	clock    Clock
	bus      *event.Bus
	logger   *zap.Logger
	onChange func(n int)
}

// Option configures a Store.
type Option func(*Store)

// WithIdleTimeout sets how long an untouched session survives.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.idle = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithBus publishes every filter change on bus as event.TopicFilterChanged.
func WithBus(bus *event.Bus) Option {
	return func(s *Store) { s.bus = bus }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithSizeObserver is called with the session count after every change to it.
func WithSizeObserver(fn func(n int)) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		idle:     DefaultIdleTimeout,
		clock:    systemClock{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session seeded with initial.
func (s *Store) Create(initial filter.State) *Session {
	sess := &Session{
		ID:      uuid.New().String(),
		Filters: filter.NewManagerWith(initial),
	}
	if s.bus != nil {
		bus, id := s.bus, sess.ID
		sess.unsub = sess.Filters.Subscribe(func(c filter.Change) {
			_ = bus.Publish(context.Background(), event.Event{
				Topic:   event.TopicFilterChanged,
				Source:  "session",
				Payload: event.FilterChanged{SessionID: id, Change: c},
			})
		})
	}

	s.mu.Lock()
	sess.lastSeen = s.clock.Now()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("session created", zap.String("session_id", sess.ID))
	s.notify(n)
	return sess
}

// Get returns the live session with id and marks it as used.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := s.clock.Now()
	if now.Sub(sess.lastSeen) > s.idle {
		return nil, ErrNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

// GetOrCreate returns the session for id, or a new default session when id
// is empty, unknown or expired. created reports which happened.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess, false
		}
	}
	return s.Create(filter.Default()), true
}

// Delete ends the session with id. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if ok {
		sess.close()
		s.notify(n)
	}
}

// Len returns the number of tracked sessions, expired ones included until
// the next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.clock.Now()
	var expired []*Session

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.idle {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		sess.close()
	}
	if len(expired) > 0 {
		s.logger.Debug("expired sessions swept", zap.Int("count", len(expired)), zap.Int("remaining", n))
		s.notify(n)
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) notify(n int) {
	if s.onChange != nil {
		s.onChange(n)
	}
}

func (sess *Session) close() {
	if sess.unsub != nil {
		sess.unsub()
	}
}
