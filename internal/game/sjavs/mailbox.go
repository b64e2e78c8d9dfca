package sjavs

// mailbox is one seat's pending-update queue. All access happens under the
// table lock, which makes the drain atomic with respect to appends from
// other commands.
type mailbox struct {
	msgs []string
}

// mailboxCap bounds a mailbox that nobody drains (e.g. a client that joined
// and went away without triggering the liveness reset yet). Oldest entries
// are dropped first.
const mailboxCap = 256

func (m *mailbox) Append(msg string) {
	if len(m.msgs) >= mailboxCap {
		m.msgs = m.msgs[1:]
	}
	m.msgs = append(m.msgs, msg)
}

// Drain returns and clears all pending messages.
func (m *mailbox) Drain() []string {
	out := m.msgs
	m.msgs = nil
	return out
}

func (m *mailbox) Empty() bool {
	return len(m.msgs) == 0
}
