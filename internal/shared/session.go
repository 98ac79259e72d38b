package shared

import (
	"context"
	"errors"
)

// ErrSessionMissing occurs when a handler runs without the session middleware.
var ErrSessionMissing = errors.New("session missing")

// FlashMessage is a notification shown once on the next rendered page.
type FlashMessage struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Flash kinds understood by the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Session is the server-side state of one browser. It is loaded by the
// SessionManager at the start of a request and persisted by Commit.
type Session struct {
	ID string

	values  map[string]string
	user    string
	flashes []FlashMessage

	isNew      bool
	dirty      bool
	destroyed  bool
	previousID string
}

// Get returns the value stored under key, or "".
func (s *Session) Get(key string) string {
	return s.values[key]
}

// Set stores value under key.
func (s *Session) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if old, ok := s.values[key]; ok && old == value {
		return
	}
	s.values[key] = value
	s.dirty = true
}

// Delete removes keys. Absent keys leave the session clean.
func (s *Session) Delete(keys ...string) {
	for _, key := range keys {
		if _, ok := s.values[key]; !ok {
			continue
		}
		delete(s.values, key)
		s.dirty = true
	}
}

// SetUser ties the session to a user key; "" detaches it.
func (s *Session) SetUser(key string) {
	if s.user == key {
		return
	}
	s.user = key
	s.dirty = true
}

// User returns the key set by SetUser.
func (s *Session) User() string {
	return s.user
}

// AddFlash queues msg for the next page.
func (s *Session) AddFlash(msg FlashMessage) {
	s.flashes = append(s.flashes, msg)
	s.dirty = true
}

// PopFlash removes and returns the oldest queued flash, or nil.
func (s *Session) PopFlash() *FlashMessage {
	if len(s.flashes) == 0 {
		return nil
	}
	msg := s.flashes[0]
	s.flashes = s.flashes[1:]
	s.dirty = true
	return &msg
}

type sessionContextKey struct{}

// ContextWithSession attaches sess to ctx.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the request's session, or nil outside the
// session middleware.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}
