package record

import (
	"encoding/binary"

	"github.com/embtrace/tracebuf/wire"
)

// MarshalBinary renders the header and buffer in the byte layout the host
// decoder consumes: six little-endian header words followed by the whole
// buffer, guard words included. Suspend logging around the call, for
// example with SetFilter(0) and RestoreFilter, if the snapshot must be
// internally consistent.
func (e *Engine) MarshalBinary() ([]byte, error) {
	buf := e.hdr.buffer
	out := make([]byte, 4*(wire.HeaderWords+len(buf)))
	le := binary.LittleEndian
	le.PutUint32(out[0:], e.WriteIndex())
	le.PutUint32(out[4:], e.hdr.filter.Load())
	le.PutUint32(out[8:], e.hdr.config)
	le.PutUint32(out[12:], e.hdr.frequency)
	le.PutUint32(out[16:], e.hdr.filterBackup.Load())
	le.PutUint32(out[20:], e.hdr.bufferWords)
	for i, w := range buf {
		le.PutUint32(out[4*(wire.HeaderWords+i):], w)
	}
	return out, nil
}
