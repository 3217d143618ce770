package record

import (
	"sync/atomic"

	"github.com/embtrace/tracebuf/reserve"
)

// header is the in-memory log structure shared by all logging calls: the
// six metadata words the host decoder reads, followed by the circular
// buffer with its trailing guard words. Field order mirrors the exported
// byte layout (see Engine.MarshalBinary).
type header struct {
	state        reserve.State // word 0: write index
	filter       atomic.Uint32 // word 1: active filter mask
	config       uint32        // word 2: configuration fingerprint
	frequency    uint32        // word 3: timestamp frequency in Hz
	filterBackup atomic.Uint32 // word 4: last non-zero SetFilter value
	bufferWords  uint32        // word 5: buffer length incl. guard words
	buffer       []uint32
}

// WriteIndex returns the current write position, normalized into the
// logical buffer range.
func (e *Engine) WriteIndex() uint32 {
	return e.hdr.state.Limit(e.hdr.state.Index.Load())
}

// Filter returns the active filter mask.
func (e *Engine) Filter() uint32 {
	return e.hdr.filter.Load()
}

// ConfigWord returns the configuration fingerprint stored in the header.
func (e *Engine) ConfigWord() uint32 {
	return e.hdr.config
}

// Frequency returns the timestamp frequency currently announced to the
// decoder, in Hz.
func (e *Engine) Frequency() uint32 {
	return e.hdr.frequency
}

// Words returns a copy of the buffer, guard words included. Pause or
// filter out concurrent loggers first if a consistent view is needed.
func (e *Engine) Words() []uint32 {
	out := make([]uint32, len(e.hdr.buffer))
	copy(out, e.hdr.buffer)
	return out
}
