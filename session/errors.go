package session

import "errors"

var (
	// ErrSessionClosed indicates that the session has been closed. A closed
	// session is never reused; create a new session to reconnect.
	ErrSessionClosed = errors.New("session closed")

	// ErrNotConfigured indicates that Open was called on a session that is
	// not in the configured state.
	ErrNotConfigured = errors.New("session is not in the configured state")

	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("session config is nil")

	// ErrDictionaryNil indicates that a nil dictionary was provided.
	ErrDictionaryNil = errors.New("dictionary is nil")
)
