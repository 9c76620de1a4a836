package view

import (
	"sync"
	"time"

	"go-leave/internal/leave"
	"go-leave/internal/navigation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one browser tab's UI state: its history stack, the navigation
// controller bound to it and the form draft. Lock mu around every event so
// each one runs to completion before the next.
type Session struct {
	mu       sync.Mutex
	ID       string
	History  *navigation.StackHistory
	Nav      *navigation.Controller[leave.LeaveResponse]
	Form     *Form
	lastSeen time.Time
}

func newSession(id string, now time.Time, logger *zap.Logger) *Session {
	h := navigation.NewStackHistory()
	return &Session{
		ID:       id,
		History:  h,
		Nav:      navigation.NewController[leave.LeaveResponse](h, logger.With(zap.String("session_id", id))),
		Form:     NewForm(),
		lastSeen: now,
	}
}

// Sessions is the in-memory session registry. Idle sessions are evicted
// lazily on lookup.
type Sessions struct {
	mu      sync.Mutex
	byID    map[string]*Session
	maxIdle time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func NewSessions(maxIdle time.Duration, logger ...*zap.Logger) *Sessions {
	l := zap.L().Named("view.sessions")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("view.sessions")
	}
	return &Sessions{
		byID:    make(map[string]*Session),
		maxIdle: maxIdle,
		now:     time.Now,
		logger:  l,
	}
}

// Get returns the session for id, creating a fresh one when id is empty,
// unknown or expired. created reports whether a new session was made.
func (s *Sessions) Get(id string) (sess *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	if sess, ok := s.byID[id]; ok && id != "" {
		sess.lastSeen = now
		return sess, false
	}

	sess = newSession(uuid.New().String(), now, s.logger)
	s.byID[sess.ID] = sess
	s.logger.Debug("session created", zap.String("session_id", sess.ID))
	return sess, true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep drops every idle session and returns how many were removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(s.now())
}

func (s *Sessions) evictLocked(now time.Time) int {
	if s.maxIdle <= 0 {
		return 0
	}
	evicted := 0
	for id, sess := range s.byID {
		if now.Sub(sess.lastSeen) > s.maxIdle {
			// A request still holding the session keeps it alive.
			if !sess.mu.TryLock() {
				continue
			}
			sess.Nav.Close()
			sess.mu.Unlock()
			delete(s.byID, id)
			s.logger.Debug("session expired", zap.String("session_id", id))
			evicted++
		}
	}
	return evicted
}
