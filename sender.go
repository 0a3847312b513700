package mpsc

import "sync/atomic"

// Sender is a producer handle for an MPSC channel. Any number of Senders
// may send concurrently; each one counts toward the channel's live-producer
// total until it is closed.
//
// A Sender must eventually be closed. Go has no destructors, so the scoped
// release the channel's shutdown protocol depends on is spelled
// "defer tx.Close()". A Sender that is never closed keeps the channel open
// forever and leaves the Receiver blocked in Recv.
type Sender[T any] struct {
	shared *shared[T]
	closed atomic.Bool
}

// Send enqueues v for the Receiver. It never blocks on channel state and
// never fails: the queue is unbounded, and a Sender cannot observe whether
// the Receiver is still being read. Values sent after the Receiver is
// abandoned are retained until the channel itself becomes unreachable.
//
// Send panics if the handle has already been closed.
func (s *Sender[T]) Send(v T) {
	if s.closed.Load() {
		panic("mpsc: Send on closed Sender")
	}
	sh := s.shared
	sh.mu.Lock()
	sh.queue = append(sh.queue, v)
	sh.mu.Unlock()
	sh.avail.Signal()
}

// Clone returns a new Sender for the same channel.
//
// Cloning is an explicit method rather than a struct copy because it is a
// protocol step: the live-producer count is incremented under the lock as a
// side effect. Copying a Sender value instead of calling Clone corrupts the
// count and with it the shutdown protocol.
//
// Clone panics if the handle has already been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.Load() {
		panic("mpsc: Clone of closed Sender")
	}
	sh := s.shared
	sh.mu.Lock()
	sh.senders++
	sh.mu.Unlock()
	return &Sender[T]{shared: sh}
}

// Close releases this handle. When the last handle is closed the Receiver
// is woken exactly once so it can observe closure. Close is idempotent per
// handle; closing one Sender does not affect its clones.
func (s *Sender[T]) Close() {
	if s.closed.Swap(true) {
		return
	}
	sh := s.shared
	sh.mu.Lock()
	sh.senders--
	// The decrement and the last-handle check happen under the same lock
	// hold, so two concurrent Closes cannot both (or neither) decide they
	// were last.
	last := sh.senders == 0
	sh.mu.Unlock()
	if last {
		sh.avail.Signal()
	}
}
