package gamepad

// DefaultQueueSize is the per-session key queue capacity. A handful of
// slots covers the worst realistic burst (every control edged in one
// report) many times over.
const DefaultQueueSize = 16

// KeyQueue is a bounded FIFO of logical keys. When the queue is full,
// Push drops the incoming key: already-queued presses keep their order
// and are never evicted, since menu navigation depends on earlier
// presses landing first.
//
// No allocation happens after New; the queue is only touched from the
// single polling context that owns its session.
type KeyQueue struct {
	buf  []Key
	head int
	size int
}

// NewKeyQueue returns a queue holding up to capacity keys. A capacity
// below one falls back to DefaultQueueSize.
func NewKeyQueue(capacity int) *KeyQueue {
	if capacity < 1 {
		capacity = DefaultQueueSize
	}
	return &KeyQueue{buf: make([]Key, capacity)}
}

// Push appends k, or drops it when the queue is full.
func (q *KeyQueue) Push(k Key) {
	if q.size == len(q.buf) {
		return
	}
	q.buf[(q.head+q.size)%len(q.buf)] = k
	q.size++
}

// Pop removes and returns the oldest key. The second result is false
// when the queue is empty.
func (q *KeyQueue) Pop() (Key, bool) {
	if q.size == 0 {
		return KeyNone, false
	}
	k := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return k, true
}

// Len returns the number of queued keys.
func (q *KeyQueue) Len() int { return q.size }

// Empty reports whether no keys are queued.
func (q *KeyQueue) Empty() bool { return q.size == 0 }
