package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/ui"
)

var ErrNotFound = errors.New("session not found")

// Session holds one player's page. Every operation on the page goes through
// Do, so the page sees one event at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	page     *ui.Page
	lastSeen time.Time
	now      func() time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// Do runs fn with exclusive access to the page and counts as activity.
func (s *Session) Do(fn func(p *ui.Page) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	return fn(s.page)
}

// Done is closed once the session is deleted or expires.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl time.Duration
	now func() time.Time
	log logrus.FieldLogger
}

type StoreOption func(*Store)

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func WithLogger(log logrus.FieldLogger) StoreOption {
	return func(s *Store) { s.log = log }
}

// NewStore returns an empty store. Sessions idle for longer than ttl are
// dropped by [Store.Sweep]; a zero ttl keeps them forever.
func NewStore(ttl time.Duration, opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create(page *ui.Page) *Session {
	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		page:      page,
		lastSeen:  now,
		now:       s.now,
		done:      make(chan struct{}),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get looks a session up and marks it as used. If id is not present,
// [ErrNotFound] is returned.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// Deletes a session without checking if it existed.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.close()
	}
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops the sessions idle since before now-ttl and returns how many
// were dropped.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	deadline := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(deadline) {
			delete(s.sessions, id)
			sess.close()
			n++
		}
	}
	return n
}

// Run sweeps the store every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if s.ttl <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.log.WithFields(logrus.Fields{
					"expired": n,
					"active":  s.Count(),
				}).Info("expired idle sessions")
			}
		}
	}
}
