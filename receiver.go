package mpsc

import (
	"iter"
	"sync/atomic"
)

// Receiver is the single consumer handle for an MPSC channel. It is not
// cloneable, and single-consumer is a hard invariant rather than a naming
// convention: concurrent calls into the same Receiver panic.
type Receiver[T any] struct {
	shared *shared[T]

	// local holds backlog stolen from the shared queue. Only the consumer
	// touches it, so it needs no locking.
	local []T

	busy atomic.Bool
}

// Recv returns the next value in send order. It blocks while the channel is
// empty and at least one Sender remains. Once every Sender is closed and
// the backlog is drained, Recv returns the zero value and false, and keeps
// doing so forever; closure is terminal.
func (r *Receiver[T]) Recv() (T, bool) {
	r.enter()
	defer r.leave()
	return r.recv()
}

func (r *Receiver[T]) recv() (T, bool) {
	if len(r.local) > 0 {
		v := r.local[0]
		r.local = r.local[1:]
		return v, true
	}
	sh := r.shared
	sh.mu.Lock()
	for {
		if len(sh.queue) > 0 {
			v := sh.queue[0]
			if rest := sh.queue[1:]; len(rest) > 0 {
				// Steal the whole backlog so the next len(rest) receives
				// run without the lock. The shared queue gives up its
				// backing array; the next Send allocates a fresh one.
				r.local = rest
				sh.queue = nil
			} else {
				sh.queue = sh.queue[:0]
			}
			sh.mu.Unlock()
			return v, true
		}
		if sh.senders == 0 {
			sh.mu.Unlock()
			var zero T
			return zero, false
		}
		// Wait releases the mutex atomically and reacquires it on wake.
		// Wakeups may be spurious, hence the re-check loop.
		sh.avail.Wait()
	}
}

// TryRecv is a non-blocking probe. It returns the next value and ok=true if
// one is immediately available. Otherwise ok is false and open reports
// whether more values may still arrive (open=false means the channel is
// closed and drained, exactly the state in which Recv would return false).
func (r *Receiver[T]) TryRecv() (v T, ok, open bool) {
	r.enter()
	defer r.leave()
	if len(r.local) > 0 {
		v = r.local[0]
		r.local = r.local[1:]
		return v, true, true
	}
	sh := r.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if len(sh.queue) > 0 {
		v = sh.queue[0]
		if rest := sh.queue[1:]; len(rest) > 0 {
			r.local = rest
			sh.queue = nil
		} else {
			sh.queue = sh.queue[:0]
		}
		return v, true, true
	}
	return v, false, sh.senders > 0
}

// All returns the receiver as a pull sequence: each step is one Recv, and
// the sequence ends when the channel closes. The sequence is not
// restartable; once it ends the channel can never produce again, and a new
// range over All terminates immediately.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Recv()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Len reports how many values are currently buffered, counting both the
// consumer-local buffer and the shared queue.
func (r *Receiver[T]) Len() int {
	r.enter()
	defer r.leave()
	sh := r.shared
	sh.mu.Lock()
	n := len(sh.queue)
	sh.mu.Unlock()
	return n + len(r.local)
}

func (r *Receiver[T]) enter() {
	if !r.busy.CompareAndSwap(false, true) {
		panic("mpsc: concurrent use of Receiver")
	}
}

func (r *Receiver[T]) leave() {
	r.busy.Store(false)
}
