package record

import "github.com/embtrace/tracebuf/wire"

// Msg0 records a message with no data: one FMT word carrying the format
// ID and the timestamp.
func (e *Engine) Msg0(fmtID uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, 1)
	if !ok {
		return
	}
	if e.delayed {
		ts = e.now()
	}
	e.hdr.buffer[idx] = wire.FmtWord(ts, fmtID, 0, e.fmtBits)
}

// Msg1 records one data word. The low bit of fmtID must be zero.
func (e *Engine) Msg1(fmtID, d0 uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, 2)
	if !ok {
		return
	}
	buf := e.hdr.buffer
	buf[idx] = d0 & wire.DataMask
	if e.delayed {
		ts = e.now()
	}
	buf[idx+1] = wire.FmtWord(ts, fmtID, d0>>31, e.fmtBits)
}

// Msg2 records two data words. The low two bits of fmtID must be zero.
func (e *Engine) Msg2(fmtID, d0, d1 uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, 3)
	if !ok {
		return
	}
	buf := e.hdr.buffer
	buf[idx] = d0 & wire.DataMask
	buf[idx+1] = d1 & wire.DataMask
	if e.delayed {
		ts = e.now()
	}
	acc := d0>>31<<1 | d1>>31
	buf[idx+2] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
}

// Msg3 records three data words. The low three bits of fmtID must be zero.
func (e *Engine) Msg3(fmtID, d0, d1, d2 uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, 4)
	if !ok {
		return
	}
	buf := e.hdr.buffer
	buf[idx] = d0 & wire.DataMask
	buf[idx+1] = d1 & wire.DataMask
	buf[idx+2] = d2 & wire.DataMask
	if e.delayed {
		ts = e.now()
	}
	acc := d0>>31<<2 | d1>>31<<1 | d2>>31
	buf[idx+3] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
}

// Msg4 records four data words, one full subpacket. The low four bits of
// fmtID must be zero.
func (e *Engine) Msg4(fmtID, d0, d1, d2, d3 uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, 5)
	if !ok {
		return
	}
	buf := e.hdr.buffer
	buf[idx] = d0 & wire.DataMask
	buf[idx+1] = d1 & wire.DataMask
	buf[idx+2] = d2 & wire.DataMask
	buf[idx+3] = d3 & wire.DataMask
	if e.delayed {
		ts = e.now()
	}
	acc := d0>>31<<3 | d1>>31<<2 | d2>>31<<1 | d3>>31
	buf[idx+4] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
}

// MsgN records a word slice as a chain of subpackets, four data words
// per FMT word, all stamped with one timestamp. Payloads above the
// configured maximum are truncated, or dropped whole when the engine was
// configured to discard oversized messages. The low four bits of fmtID
// must be zero.
func (e *Engine) MsgN(fmtID uint32, data []uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	n := uint32(len(data))
	if n > e.maxWords {
		if e.discard {
			return
		}
		n = e.maxWords
		data = data[:n]
	}
	total := n + (n+3)/4
	if total == 0 {
		total = 1
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, total)
	if !ok {
		return
	}
	if e.delayed {
		ts = e.now()
	}
	buf := e.hdr.buffer
	for {
		m := n
		if m > 4 {
			m = 4
		}
		var acc uint32
		for j := uint32(0); j < m; j++ {
			w := data[j]
			acc = acc<<1 | w>>31
			buf[idx+j] = w & wire.DataMask
		}
		buf[idx+m] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
		if n <= 4 {
			return
		}
		data = data[4:]
		n -= 4
		idx = e.hdr.state.Limit(idx + wire.SubpacketWords)
	}
}

// MsgX records a byte payload of arbitrary length. Bytes pack into words
// little-endian; the final data word carries the payload length in its
// top eight bits, so the decoder recovers the exact byte count without an
// extra word. The length field caps the payload at 255 bytes (less when
// MaxSubpackets allows fewer). The low four bits of fmtID must be zero.
func (e *Engine) MsgX(fmtID uint32, data []byte) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	length := uint32(len(data))
	if length > e.maxXBytes-1 {
		if e.discard {
			return
		}
		length = e.maxXBytes - 1
		data = data[:length]
	}
	total := 2 + length/4 + length/16
	idx, ok := e.strat.Reserve(&e.hdr.state, total)
	if !ok {
		return
	}
	if e.delayed {
		ts = e.now()
	}
	buf := e.hdr.buffer
	off := uint32(0)
	for {
		var acc uint32
		slot := idx
		for i := 0; i < 4; i++ {
			var w uint32
			for b := uint32(0); b < 4 && off+b < length; b++ {
				w |= uint32(data[off+b]) << (8 * b)
			}
			last := off+4 > length
			off += 4
			acc = acc<<1 | w>>31
			w &= wire.DataMask
			if last {
				w |= length << 24
			}
			buf[slot] = w
			slot++
			if last {
				buf[slot] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
				return
			}
		}
		buf[slot] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
		idx = e.hdr.state.Limit(idx + wire.SubpacketWords)
	}
}

// String records a text payload, truncated to the configured maximum
// message size. The final word is zero-padded, so the decoder trims
// trailing NULs. The low four bits of fmtID must be zero.
func (e *Engine) String(fmtID uint32, s string) {
	e.stringN(fmtID, s, e.maxBytes)
}

// StringN is String with an explicit length limit, for call sites that
// want to bound the buffer space a potentially long string may take.
func (e *Engine) StringN(fmtID uint32, s string, maxLen uint32) {
	if maxLen > e.maxBytes {
		maxLen = e.maxBytes
	}
	e.stringN(fmtID, s, maxLen)
}

func (e *Engine) stringN(fmtID uint32, s string, maxLen uint32) {
	var ts uint32
	if !e.delayed {
		ts = e.now()
	}
	if e.disabled(fmtID) {
		return
	}
	length := uint32(len(s))
	if length > maxLen {
		length = maxLen
	}
	dataWords := (length + 3) / 4
	total := dataWords + (length+15)/16
	if total == 0 {
		total = 1
	}
	idx, ok := e.strat.Reserve(&e.hdr.state, total)
	if !ok {
		return
	}
	if e.delayed {
		ts = e.now()
	}
	buf := e.hdr.buffer
	off, written := uint32(0), uint32(0)
	for {
		m := dataWords - written
		if m > 4 {
			m = 4
		}
		var acc uint32
		for j := uint32(0); j < m; j++ {
			var w uint32
			for b := uint32(0); b < 4 && off+b < length; b++ {
				w |= uint32(s[off+b]) << (8 * b)
			}
			off += 4
			acc = acc<<1 | w>>31
			buf[idx+j] = w & wire.DataMask
		}
		buf[idx+m] = wire.FmtWord(ts, fmtID, acc, e.fmtBits)
		written += m
		if written >= dataWords {
			return
		}
		idx = e.hdr.state.Limit(idx + wire.SubpacketWords)
	}
}
