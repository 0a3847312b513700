package mpsc

import "sync"

// shared is the state jointly owned by every Sender and the Receiver.
// Both fields are guarded by mu; avail is signaled after mu is released
// so a woken waiter never immediately blocks on a mutex the signaler
// still holds.
type shared[T any] struct {
	mu    sync.Mutex
	avail *sync.Cond

	queue   []T // FIFO backlog, appended by senders
	senders int // live Sender handles not yet closed
}

// Option is a functional option for configuring a channel at construction.
type Option[T any] func(*shared[T])

// WithCapacity preallocates storage for the shared queue. It is purely an
// allocation hint for the first burst of sends; the queue itself remains
// unbounded.
func WithCapacity[T any](n int) Option[T] {
	return func(s *shared[T]) {
		s.queue = make([]T, 0, n)
	}
}

// New creates an unbounded MPSC channel and returns its first producer
// handle and its only consumer handle. More producers are obtained by
// cloning the Sender; the Receiver cannot be cloned.
//
// Example:
//
//	tx, rx := mpsc.New[int]()
//	go func() {
//	    defer tx.Close()
//	    tx.Send(42)
//	}()
//	for v := range rx.All() {
//	    fmt.Println(v)
//	}
func New[T any](opts ...Option[T]) (*Sender[T], *Receiver[T]) {
	sh := &shared[T]{senders: 1}
	sh.avail = sync.NewCond(&sh.mu)
	for _, opt := range opts {
		opt(sh)
	}
	return &Sender[T]{shared: sh}, &Receiver[T]{shared: sh}
}
