package session

import (
	"sync/atomic"
)

// Metrics contains atomic metrics for a session.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type Metrics struct {
	// MsgSendCount indicates the number of messages written to the wire.
	MsgSendCount atomic.Uint64
	// MsgRecvCount indicates the number of messages decoded from the wire.
	MsgRecvCount atomic.Uint64
	// HeartbeatSendCount indicates the number of heartbeat messages sent.
	HeartbeatSendCount atomic.Uint64
	// EncodeErrCount indicates the number of messages dropped by encode or
	// signing failures.
	EncodeErrCount atomic.Uint64
	// SendErrCount indicates the number of connection write failures.
	SendErrCount atomic.Uint64
	// RecvErrCount indicates the number of connection read or decode failures.
	RecvErrCount atomic.Uint64
}

func (m *Metrics) incMsgSendCount() {
	m.MsgSendCount.Add(1)
}

func (m *Metrics) incMsgRecvCount() {
	m.MsgRecvCount.Add(1)
}

func (m *Metrics) incHeartbeatSendCount() {
	m.HeartbeatSendCount.Add(1)
}

func (m *Metrics) incEncodeErrCount() {
	m.EncodeErrCount.Add(1)
}

func (m *Metrics) incSendErrCount() {
	m.SendErrCount.Add(1)
}

func (m *Metrics) incRecvErrCount() {
	m.RecvErrCount.Add(1)
}
