// Package mpsc implements an unbounded multi-producer, single-consumer
// channel built from a mutex, a condition variable and a consumer-side
// swap buffer.
//
// The main components include:
//
//   - Sender: a cloneable producer handle; Send never blocks and never fails
//   - Receiver: the single consumer handle; Recv blocks while the channel is
//     empty and producers remain, and reports closure once the last Sender
//     is closed and the backlog is drained
//   - New: constructs the shared state and returns one Sender/Receiver pair
//
// Unlike a native Go channel the queue has no capacity bound: a producer
// that outpaces the consumer grows memory without backpressure. That is a
// deliberate trade-off; Send can therefore never block and never fail.
// Delivery is FIFO per Sender; across concurrently sending handles the
// interleaving follows the order in which each send's critical section
// completes.
//
// The Receiver keeps a private local buffer. Whenever it finds a backlog
// under the lock it steals the entire backlog in one swap, and subsequent
// receives drain the local buffer without touching the lock, so the cost of
// a lock acquisition is paid once per burst rather than once per message.
package mpsc
