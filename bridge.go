package mpsc

// This file adapts the channel to code written against native Go channels.
// Each bridge owns one goroutine for the lifetime of its endpoint.

// FromChan starts a goroutine that forwards every value from ch into tx.
// When ch is closed and drained the goroutine closes tx, so a bridged
// producer participates in the shutdown protocol like any other handle.
// The caller hands ownership of tx to the bridge and must not use it again.
func FromChan[T any](tx *Sender[T], ch <-chan T) {
	go func() {
		defer tx.Close()
		for v := range ch {
			tx.Send(v)
		}
	}()
}

// ToChan starts a goroutine that drains rx into the returned channel and
// closes it when rx reports closure. The goroutine is the single consumer
// from then on; the caller must not touch rx again.
func ToChan[T any](rx *Receiver[T]) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for v := range rx.All() {
			out <- v
		}
	}()
	return out
}
