package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/tradewire/go-fix/fix"
	"github.com/tradewire/go-fix/logger"
)

// Config holds the configuration parameters for one session.
type Config struct {
	// host and port locate the remote FIX endpoint. The transport-level TLS
	// tunnel, if any, is expected to terminate before bytes reach this
	// engine; OpenConn can adopt an externally established connection.
	host string
	port int

	// beginString is the fixed protocol version string sent as BeginString.
	// Defaults to "FIX.4.2".
	beginString string

	// targetCompID identifies the counterparty. Defaults to "Coinbase".
	targetCompID string

	// heartbeatInterval defines the interval between heartbeat messages and
	// the HeartBtInt value announced on Logon.
	// Defaults to 30 seconds.
	heartbeatInterval time.Duration

	// outboundQueueSize defines the capacity of the outbound message queue.
	// Send blocks once the queue is full, applying backpressure to callers
	// instead of dropping messages.
	// Defaults to 10.
	outboundQueueSize int

	// inboundQueueSize defines the capacity of the inbound message queue.
	// The receive loop blocks once the queue is full, applying backpressure
	// to the wire instead of growing memory unboundedly.
	// Defaults to 100.
	inboundQueueSize int

	// dialTimeout bounds the TCP connect in Open.
	// Defaults to 3 seconds.
	dialTimeout time.Duration

	// logonFields are caller overrides merged over the default Logon body
	// fields.
	logonFields fix.FieldMap

	// logger receives session events and errors.
	logger logger.Logger
}

// NewConfig creates a session configuration with the given host, port and
// optional functional options.
func NewConfig(host string, port int, opts ...Option) (*Config, error) {
	cfg := &Config{
		host:              host,
		port:              port,
		beginString:       "FIX.4.2",
		targetCompID:      "Coinbase",
		heartbeatInterval: 30 * time.Second,
		outboundQueueSize: 10,
		inboundQueueSize:  100,
		dialTimeout:       3 * time.Second,
		logonFields:       make(fix.FieldMap),
		logger:            logger.GetLogger(),
	}

	if host == "" {
		return nil, errors.New("host is empty")
	}
	if port <= 0 || port > 65535 {
		return nil, errors.New("port is out of range [1, 65535]")
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Option represents a functional option for configuring a session Config.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error { return f(cfg) }

// WithBeginString sets the protocol version string sent as BeginString.
func WithBeginString(beginString string) Option {
	return optFunc(func(cfg *Config) error {
		if beginString == "" {
			return errors.New("begin string is empty")
		}
		cfg.beginString = beginString
		return nil
	})
}

// WithTargetCompID sets the counterparty identifier sent as TargetCompID.
func WithTargetCompID(targetCompID string) Option {
	return optFunc(func(cfg *Config) error {
		if targetCompID == "" {
			return errors.New("target comp id is empty")
		}
		cfg.targetCompID = targetCompID
		return nil
	})
}

// WithHeartbeatInterval sets the heartbeat interval. It should be between
// 1 and 120 seconds.
func WithHeartbeatInterval(interval time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if interval < time.Second || interval > 120*time.Second {
			return fmt.Errorf("heartbeat interval %v is out of range [1s, 120s]", interval)
		}
		cfg.heartbeatInterval = interval
		return nil
	})
}

// WithOutboundQueueSize sets the capacity of the outbound message queue.
//
// This option controls the backpressure level for unsent messages: a larger
// queue accommodates bursts but delays the blocking signal to producers.
func WithOutboundQueueSize(size int) Option {
	return optFunc(func(cfg *Config) error {
		if size < 1 {
			return errors.New("outbound queue size must be at least 1")
		}
		cfg.outboundQueueSize = size
		return nil
	})
}

// WithInboundQueueSize sets the capacity of the inbound message queue.
func WithInboundQueueSize(size int) Option {
	return optFunc(func(cfg *Config) error {
		if size < 1 {
			return errors.New("inbound queue size must be at least 1")
		}
		cfg.inboundQueueSize = size
		return nil
	})
}

// WithDialTimeout sets the timeout for establishing the TCP connection.
func WithDialTimeout(timeout time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if timeout <= 0 {
			return errors.New("dial timeout must be positive")
		}
		cfg.dialTimeout = timeout
		return nil
	})
}

// WithLogonField overrides one field of the Logon body. Overrides take
// precedence over the default Logon fields.
func WithLogonField(name string, value fix.Value) Option {
	return optFunc(func(cfg *Config) error {
		if name == "" {
			return errors.New("logon field name is empty")
		}
		cfg.logonFields[name] = value
		return nil
	})
}

// WithLogger sets the logger for session events and errors.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l
		return nil
	})
}
