package session

// State represents the lifecycle state of a session.
// The transitions are Configured → Connected → Closed; Closed is terminal.
type State int32

const (
	// StateConfigured is the initial state: credentials and configuration
	// are set but no connection exists.
	StateConfigured State = iota
	// StateConnected is entered when the engine has opened the connection
	// and enqueued the Logon message.
	StateConnected
	// StateClosed is entered when either side closes the connection or the
	// caller requests shutdown. A closed session is never reused.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConfigured:
		return "configured"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
