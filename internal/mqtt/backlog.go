package mqtt

import "log"

// outbound is a serialized message waiting for the broker to come back.
type outbound struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// backlog is a fixed-capacity FIFO holding messages while the broker is
// unreachable. When full, the oldest message is dropped: recent status
// beats stale status. Not safe for concurrent use — caller synchronizes.
type backlog struct {
	msgs    []outbound
	max     int
	dropped int
}

func newBacklog(max int) *backlog {
	return &backlog{max: max}
}

func (b *backlog) add(m outbound) {
	if len(b.msgs) == b.max {
		if b.dropped == 0 {
			log.Printf("mqtt: backlog full (%d messages), dropping oldest", b.max)
		}
		b.dropped++
		copy(b.msgs, b.msgs[1:])
		b.msgs = b.msgs[:len(b.msgs)-1]
	}
	b.msgs = append(b.msgs, m)
}

// take returns all pending messages in order and empties the backlog.
func (b *backlog) take() []outbound {
	msgs := b.msgs
	b.msgs = nil
	b.dropped = 0
	return msgs
}

func (b *backlog) len() int {
	return len(b.msgs)
}
