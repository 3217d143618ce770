// Package reserve implements the circular-buffer space-reservation
// primitive: atomically fetch the current write index, normalize it into
// the buffer, and advance it by the requested word count.
//
// The contract every Strategy satisfies:
//
//	idx, ok := strat.Reserve(state, words)
//
//	ok == true   idx is the normalized start of a range of `words` buffer
//	             words owned exclusively by the caller; no other caller,
//	             goroutine or reentrant invocation receives an overlapping
//	             range.
//	ok == false  single-shot mode is active and the message no longer
//	             fits; nothing was advanced and nothing may be written.
//
// Strategies are chosen at configuration time, not per call:
//
//	CAS        compare-and-swap retry loop; the default. Handles any
//	           capacity and single-shot mode.
//	FetchAdd   wait-free atomic add. Requires a power-of-two capacity
//	           (the 32-bit index wraps modulo 2^32, which only divides
//	           evenly then) and post-mortem mode, since a fetch-add
//	           cannot atomically abort on buffer-full.
//	Mutex      a short critical section around the read-modify-write,
//	           the moral equivalent of masking interrupts. Callers that
//	           cannot tolerate blocking must not share a buffer between
//	           contexts with this strategy.
//	Unguarded  no synchronization; opt-in for callers that guarantee a
//	           single logging context.
//
// Go's atomic operations are sequentially consistent, so the distinction
// the engine would otherwise draw between relaxed single-core and
// sequentially-consistent multi-core orderings collapses: CAS is correct
// for both. The successful exchange publishes the reservation; data words
// written into the reserved range afterwards are ordered before the next
// reservation as usual for the Go memory model.
//
// The stored index follows the normalize-then-advance discipline: the
// value kept in State may exceed the capacity by up to the reserved size,
// and every load re-normalizes before use. Capacity checks in single-shot
// mode happen inside the retry loop, so there is no window between the
// check and the advance.
package reserve
