package timestamp

import (
	"sync/atomic"
	"time"
)

// Monotonic reads the runtime monotonic clock as a free-running 32-bit
// nanosecond counter. It rolls over every ~4.3 s; periodic calls to
// record.LongTimestamp extend it to 64 bits.
type Monotonic struct {
	start time.Time
}

// NewMonotonic returns an uninitialized monotonic source; the engine's
// Init resets its epoch.
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

func (m *Monotonic) Init() error {
	m.start = time.Now()
	return nil
}

func (m *Monotonic) Read() uint32 {
	return uint32(time.Since(m.start).Nanoseconds())
}

func (m *Monotonic) Bits() uint32 { return 32 }

func (m *Monotonic) Frequency() uint32 { return 1_000_000_000 }

// Counter is a manually driven source. Set or Advance it from test code
// to produce exact timestamp sequences, including rollovers of counters
// narrower than 32 bits.
type Counter struct {
	value atomic.Uint32
	bits  uint32
	freq  uint32
}

// NewCounter returns a counter of the given significant width and
// nominal frequency. Reads are masked to the width.
func NewCounter(bits, freq uint32) *Counter {
	return &Counter{bits: bits, freq: freq}
}

func (c *Counter) Init() error {
	c.value.Store(0)
	return nil
}

func (c *Counter) Read() uint32 {
	return c.value.Load() & c.mask()
}

func (c *Counter) Bits() uint32 { return c.bits }

func (c *Counter) Frequency() uint32 { return c.freq }

// Set replaces the counter value.
func (c *Counter) Set(v uint32) { c.value.Store(v) }

// Advance adds d to the counter, wrapping at the configured width.
func (c *Counter) Advance(d uint32) { c.value.Add(d) }

func (c *Counter) mask() uint32 {
	if c.bits >= 32 {
		return ^uint32(0)
	}
	return 1<<c.bits - 1
}

// Zero is a source that always reads zero. Records carry no time
// information; the decoder sees every timestamp as 0.
type Zero struct{}

func (Zero) Init() error       { return nil }
func (Zero) Read() uint32      { return 0 }
func (Zero) Bits() uint32      { return 32 }
func (Zero) Frequency() uint32 { return 0 }
