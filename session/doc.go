// Package session implements the client-side FIX session engine: it owns the
// connection, assigns monotonic outbound sequence numbers, multiplexes
// application messages with a heartbeat timer, and feeds decoded inbound
// messages to the consumer.
//
// A session runs two concurrent loops over one connection. The receive loop
// only reads; the send loop only writes, and is the sole mutator of the
// sequence counter, so no cross-loop synchronization exists beyond the two
// bounded queues. Both queues block when full, trading caller responsiveness
// for not losing messages.
//
// Lifecycle is Configured → Connected → Closed. Close is not graceful: it
// forcibly shuts the socket down without a Logout handshake, and both loops
// observe the closed connection on their next I/O call. A closed session is
// never reused; create a new session to reconnect.
package session
