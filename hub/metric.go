package hub

import (
	"sync/atomic"
)

// Metrics contains atomic counters for a hub client.
// Counters can be used as the value of a prometheus CounterFunc or GaugeFunc.
type Metrics struct {
	// PollCount indicates the number of successful buffer polls.
	PollCount atomic.Uint64
	// PollErrCount indicates the number of failed buffer polls.
	PollErrCount atomic.Uint64

	// AckCount indicates the number of Acks decoded from polled buffers.
	AckCount atomic.Uint64
	// MsgCount indicates the number of Messages decoded from polled buffers.
	MsgCount atomic.Uint64

	// EventPublishCount indicates the number of events delivered to subscribers.
	EventPublishCount atomic.Uint64
	// DedupSuppressCount indicates the number of messages suppressed as duplicates.
	DedupSuppressCount atomic.Uint64

	// CommandSendCount indicates the number of commands submitted to the hub.
	CommandSendCount atomic.Uint64
}

func (m *Metrics) incPollCount() {
	m.PollCount.Add(1)
}

func (m *Metrics) incPollErrCount() {
	m.PollErrCount.Add(1)
}

func (m *Metrics) addAckCount(n int) {
	m.AckCount.Add(uint64(n))
}

func (m *Metrics) incMsgCount() {
	m.MsgCount.Add(1)
}

func (m *Metrics) incEventPublishCount() {
	m.EventPublishCount.Add(1)
}

func (m *Metrics) incDedupSuppressCount() {
	m.DedupSuppressCount.Add(1)
}

func (m *Metrics) incCommandSendCount() {
	m.CommandSendCount.Add(1)
}
