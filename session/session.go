package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tradewire/go-fix/auth"
	"github.com/tradewire/go-fix/fix"
	"github.com/tradewire/go-fix/internal/task"
	"github.com/tradewire/go-fix/logger"
)

// sendingTimeLayout renders SendingTime as yyyyMMdd-HH:mm:ss.SSS in UTC.
const sendingTimeLayout = "20060102-15:04:05.000"

// readBufferSize bounds one wire read. Each read is decoded as one complete
// message; no partial-message reassembly is performed.
const readBufferSize = 1 << 16

// outboundMsg is one enqueued application message: the message type name and
// the body fields supplied by the caller.
type outboundMsg struct {
	msgType string
	body    fix.FieldMap
}

// Session is one logical, sequence-numbered conversation over one
// connection, from Logon to disconnect.
type Session struct {
	cfg    *Config
	creds  auth.Credentials
	dict   fix.Dictionary
	logger logger.Logger

	taskMgr *task.Manager

	connMutex sync.Mutex
	conn      net.Conn

	state atomic.Int32

	// seqNum is exclusively owned by the send loop: incremented exactly once
	// per outbound message that reaches the write step, never decremented,
	// never reused.
	seqNum uint64

	outbound chan *outboundMsg
	inbound  chan *fix.Message

	closeOnce sync.Once

	metrics Metrics
}

// New creates a session in the configured state. The dictionary must be
// fully populated and is treated as immutable; the credentials are immutable
// for the session lifetime.
func New(ctx context.Context, cfg *Config, creds auth.Credentials, dict fix.Dictionary) (*Session, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	if creds.Key == "" || creds.Passphrase == "" || creds.Secret == "" {
		return nil, errors.New("credentials are incomplete")
	}

	s := &Session{
		cfg:      cfg,
		creds:    creds,
		dict:     dict,
		logger:   cfg.logger,
		taskMgr:  task.NewManager(ctx, cfg.logger),
		outbound: make(chan *outboundMsg, cfg.outboundQueueSize),
		inbound:  make(chan *fix.Message, cfg.inboundQueueSize),
	}
	s.state.Store(int32(StateConfigured))

	return s, nil
}

// State returns the current lifecycle state of the session.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Metrics returns the metrics associated with the session.
func (s *Session) Metrics() *Metrics {
	return &s.metrics
}

// Open dials the configured endpoint and brings the session up via OpenConn.
func (s *Session) Open() error {
	addr := net.JoinHostPort(s.cfg.host, fmt.Sprintf("%d", s.cfg.port))
	conn, err := net.DialTimeout("tcp", addr, s.cfg.dialTimeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	return s.OpenConn(conn)
}

// OpenConn adopts an established byte-stream connection, sends the Logon
// message and starts the receive and send loops. The connection is expected
// to be the plaintext side of an externally terminated TLS tunnel.
//
// The Logon body merges the default fields (EncryptMethod=0, HeartBtInt,
// Password, CancelOrdersOnDisconnect=Y) with the configured overrides, and
// is signed and written before either loop starts, so Logon always carries
// sequence number 1 and precedes every other outbound message on the wire.
func (s *Session) OpenConn(conn net.Conn) error {
	if !s.state.CompareAndSwap(int32(StateConfigured), int32(StateConnected)) {
		if s.State() == StateClosed {
			return fmt.Errorf("%w: create a new session to reconnect", ErrSessionClosed)
		}
		return ErrNotConfigured
	}

	s.connMutex.Lock()
	s.conn = conn
	s.connMutex.Unlock()

	if !s.deliver(fix.MsgTypeLogon, s.logonBody()) {
		s.Close()
		return fmt.Errorf("%w: logon write failed", ErrSessionClosed)
	}

	if err := s.taskMgr.Start("receiver", s.receiverFunc(), s.closeAsync); err != nil {
		s.Close()
		return err
	}

	ticker := time.NewTicker(s.cfg.heartbeatInterval)
	if err := s.taskMgr.Start("sender", s.senderFunc(ticker), func() {
		ticker.Stop()
		s.closeAsync()
	}); err != nil {
		s.Close()
		return err
	}

	s.logger.Info("session connected",
		"host", s.cfg.host, "port", s.cfg.port,
		"sender_comp_id", s.creds.Key, "target_comp_id", s.cfg.targetCompID,
	)

	return nil
}

// Send enqueues one application message. It blocks while the outbound queue
// is full, applying backpressure to the caller rather than dropping the
// message, and returns ErrSessionClosed once the session is closed.
func (s *Session) Send(msgType string, body fix.FieldMap) error {
	if s.State() == StateClosed {
		return ErrSessionClosed
	}

	select {
	case s.outbound <- &outboundMsg{msgType: msgType, body: body}:
		return nil
	case <-s.taskMgr.Context().Done():
		return ErrSessionClosed
	}
}

// Inbound returns the queue of decoded inbound messages. The engine blocks
// on this queue when it is full, so a stalled consumer applies backpressure
// to the receive loop.
func (s *Session) Inbound() <-chan *fix.Message {
	return s.inbound
}

// Close forcibly shuts the session down: it signals both loops to stop and
// closes the connection in both directions without a Logout handshake. Close
// is idempotent and never blocks on in-flight work; use Wait to block until
// both loops have terminated.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		s.taskMgr.Stop()

		s.connMutex.Lock()
		if s.conn != nil {
			if tcpConn, ok := s.conn.(*net.TCPConn); ok {
				_ = tcpConn.SetLinger(0) // force close, no lingering writes
			}
			if err := s.conn.Close(); err != nil {
				s.logger.Error("failed to close connection", "method", "Close", "error", err)
			}
		}
		s.connMutex.Unlock()

		s.logger.Info("session closed")
	})

	return nil
}

// Wait blocks until both session loops have terminated.
func (s *Session) Wait() {
	s.taskMgr.Wait()
}

// closeAsync closes the session from inside a loop goroutine. Close does not
// wait for the loops, so this cannot deadlock.
func (s *Session) closeAsync() {
	_ = s.Close()
}

// logonBody merges the default Logon fields with the configured overrides.
func (s *Session) logonBody() fix.FieldMap {
	body := fix.FieldMap{
		fix.FieldEncryptMethod:            fix.Int(0),
		fix.FieldHeartBtInt:               fix.Int(int64(s.cfg.heartbeatInterval / time.Second)),
		fix.FieldPassword:                 fix.String(s.creds.Passphrase),
		fix.FieldCancelOrdersOnDisconnect: fix.String("Y"),
	}
	for name, v := range s.cfg.logonFields {
		body[name] = v
	}

	return body
}

// senderFunc returns the send/heartbeat loop body: a select over the
// outbound queue and the heartbeat ticker. Go's select chooses pseudo-
// randomly among ready cases, so neither source starves the other.
func (s *Session) senderFunc(ticker *time.Ticker) task.Func {
	ctx := s.taskMgr.Context()

	return func() bool {
		select {
		case <-ctx.Done():
			return false

		case om := <-s.outbound:
			return s.deliver(om.msgType, om.body)

		case <-ticker.C:
			return s.deliver(fix.MsgTypeHeartbeat, nil)
		}
	}
}

// deliver builds the full envelope for one outbound message, signs it,
// encodes it and writes it to the connection.
//
// Encode and signing failures are fatal to that one message only: they are
// logged and deliver returns true so the loop stays live, and the sequence
// counter is untouched. The counter is committed only once the message
// reaches the write step, so wire order and sequence order always agree.
// A write failure is fatal to the loop.
func (s *Session) deliver(msgType string, body fix.FieldMap) bool {
	wireCode, err := s.dict.WireCodeFor(msgType)
	if err != nil {
		s.metrics.incEncodeErrCount()
		s.logger.Error("failed to resolve message type", "method", "deliver", "msg_type", msgType, "error", err)
		return true
	}

	seqNum := s.seqNum + 1
	sendingTime := time.Now().UTC().Format(sendingTimeLayout)

	signature, err := auth.Sign(s.creds, auth.SigningContext{
		SendingTime:  sendingTime,
		MsgType:      wireCode,
		MsgSeqNum:    seqNum,
		TargetCompID: s.cfg.targetCompID,
	})
	if err != nil {
		s.metrics.incEncodeErrCount()
		s.logger.Error("failed to sign message", "method", "deliver", "msg_type", msgType, "error", err)
		return true
	}

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String(s.cfg.beginString))
	msg.Header.Set(fix.FieldMsgType, fix.String(wireCode))
	msg.Header.Set(fix.FieldMsgSeqNum, fix.Int(int64(seqNum)))
	msg.Header.Set(fix.FieldSenderCompID, fix.String(s.creds.Key))
	msg.Header.Set(fix.FieldTargetCompID, fix.String(s.cfg.targetCompID))
	msg.Header.Set(fix.FieldSendingTime, fix.String(sendingTime))

	if body != nil {
		msg.Body = body.Clone()
	}
	msg.Body.Set(fix.FieldRawData, fix.String(signature))

	wire, err := fix.Encode(msg, s.dict)
	if err != nil {
		s.metrics.incEncodeErrCount()
		s.logger.Error("failed to encode message", "method", "deliver", "msg_type", msgType, "error", err)
		return true
	}

	// the message reached the write step; commit its sequence number
	s.seqNum = seqNum

	if _, err := s.conn.Write(wire); err != nil {
		s.metrics.incSendErrCount()
		if isConnClosedErr(err) {
			s.logger.Debug("connection closed during write", "method", "deliver", "msg_type", msgType)
		} else {
			s.logger.Error("failed to write message", "method", "deliver", "msg_type", msgType, "error", err)
		}
		return false
	}

	s.metrics.incMsgSendCount()
	if msgType == fix.MsgTypeHeartbeat {
		s.metrics.incHeartbeatSendCount()
	}

	if s.logger.Level() == logger.DebugLevel {
		s.logger.Debug("message sent", "method", "deliver", "msg_type", msgType, "msg_seq_num", seqNum)
	}

	return true
}

// receiverFunc returns the receive loop body: one connection read per
// message, decoded and enqueued onto the inbound queue. The loop terminates
// on the first I/O error without crashing the process.
func (s *Session) receiverFunc() task.Func {
	ctx := s.taskMgr.Context()
	buf := make([]byte, readBufferSize)

	return func() bool {
		n, err := s.conn.Read(buf)
		if err != nil {
			if isConnClosedErr(err) {
				s.logger.Debug("connection closed", "method", "receiver")
			} else {
				s.metrics.incRecvErrCount()
				s.logger.Error("failed to read from connection", "method", "receiver", "error", err)
			}
			return false
		}

		msg, err := fix.Decode(buf[:n], s.dict)
		if err != nil {
			s.metrics.incRecvErrCount()
			s.logger.Error("failed to decode message", "method", "receiver", "error", err)
			return true
		}

		s.metrics.incMsgRecvCount()

		select {
		case s.inbound <- msg:
			return true
		case <-ctx.Done():
			return false
		}
	}
}

// isConnClosedErr reports whether err is an expected consequence of the
// connection being shut down.
func isConnClosedErr(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		strings.Contains(err.Error(), "connection reset by peer")
}
