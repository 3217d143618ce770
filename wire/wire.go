package wire

// Sentinel is the erased state of the circular buffer. It marks buffer
// words that were reserved but not (yet) written.
const Sentinel uint32 = 0xFFFFFFFF

// TagBit is set in every valid FMT word, distinguishing a terminal word
// from the sentinel and letting the decoder detect complete subpackets.
const TagBit uint32 = 1

// GuardWords trail the logical buffer so a full subpacket (up to five
// words) can be written with a single wraparound check per subpacket.
const GuardWords = 4

// HeaderWords is the size of the log header in 32-bit words, as seen by
// the decoder in front of the buffer.
const HeaderWords = 6

// DataMask clears bit 31 of a DATA word.
const DataMask uint32 = 0x7FFFFFFF

// SubpacketWords is the span of a full subpacket: four DATA words plus
// one FMT word.
const SubpacketWords = 5

// TimestampMask returns the mask for the timestamp field (tag bit
// included) given the configured format-ID width.
func TimestampMask(fmtBits uint32) uint32 {
	return Sentinel >> fmtBits
}

// FmtWord composes a terminal word from an already shifted-and-masked
// timestamp field, a format ID (group bits above the format-ID width are
// discarded) and the per-subpacket accumulator.
func FmtWord(ts, fmtID, acc, fmtBits uint32) uint32 {
	return ts | TagBit | (fmtID|acc)<<(32-fmtBits)
}

// Terminal reports whether w is a complete FMT word.
func Terminal(w uint32) bool {
	return w != Sentinel && w&TagBit != 0
}

// FmtID extracts the format-ID field (including any accumulator bits in
// its low positions) from a terminal word.
func FmtID(w, fmtBits uint32) uint32 {
	return w >> (32 - fmtBits)
}

// Timestamp extracts the timestamp field from a terminal word. The tag
// bit is not part of the value, so the result is the sampled counter
// after the configured right shift.
func Timestamp(w, fmtBits uint32) uint32 {
	return (w & TimestampMask(fmtBits)) >> 1
}

// RestoreBit31 reapplies the accumulator bits of a subpacket's FMT word
// to its DATA words: the first word's original bit 31 is the
// accumulator's most significant used bit, the last word's is bit 0.
func RestoreBit31(words []uint32, acc uint32) {
	n := len(words)
	for i := 0; i < n; i++ {
		if acc>>(uint(n-1-i))&1 != 0 {
			words[i] |= 1 << 31
		}
	}
}

// Params is the decoded form of the configuration fingerprint word.
type Params struct {
	SingleShotActive  bool
	Filtering         bool
	FilterOffSwitch   bool
	SingleShotEnabled bool
	LongTimestamps    bool
	TimestampShift    uint32 // 1..16
	FmtIDBits         uint32 // 9..16
	MaxSubpackets     uint32 // 1..256 (encoded modulo 256)
	HeaderWords       uint32
	BufferPow2        bool
}

// Fingerprint word layout, bit 0 upward:
//
//	0        single-shot logging is active
//	1        message filtering enabled
//	2        filter off switch enabled
//	3        single-shot mode compiled in
//	4        long timestamps enabled
//	5..7     reserved
//	8..11    timestamp shift - 1
//	12..14   format ID bits - 9
//	15       reserved
//	16..23   max subpackets (modulo 256)
//	24..30   header size in words
//	31       buffer size is a power of two
const (
	bitSingleShotActive = 1 << 0
	bitFiltering        = 1 << 1
	bitFilterOff        = 1 << 2
	bitSingleShot       = 1 << 3
	bitLongTimestamp    = 1 << 4
)

// ConfigWord encodes p into the fingerprint word stored in the header.
func ConfigWord(p Params) uint32 {
	var w uint32
	if p.SingleShotActive {
		w |= bitSingleShotActive
	}
	if p.Filtering {
		w |= bitFiltering
	}
	if p.FilterOffSwitch {
		w |= bitFilterOff
	}
	if p.SingleShotEnabled {
		w |= bitSingleShot
	}
	if p.LongTimestamps {
		w |= bitLongTimestamp
	}
	w |= (p.TimestampShift - 1) << 8
	w |= (p.FmtIDBits - 9) << 12
	w |= (p.MaxSubpackets & 0xFF) << 16
	w |= (p.HeaderWords & 0x7F) << 24
	if p.BufferPow2 {
		w |= 1 << 31
	}
	return w
}

// ParseConfigWord decodes a fingerprint word.
func ParseConfigWord(w uint32) Params {
	sub := w >> 16 & 0xFF
	if sub == 0 {
		sub = 256
	}
	return Params{
		SingleShotActive:  w&bitSingleShotActive != 0,
		Filtering:         w&bitFiltering != 0,
		FilterOffSwitch:   w&bitFilterOff != 0,
		SingleShotEnabled: w&bitSingleShot != 0,
		LongTimestamps:    w&bitLongTimestamp != 0,
		TimestampShift:    (w >> 8 & 0xF) + 1,
		FmtIDBits:         (w >> 12 & 0x7) + 9,
		MaxSubpackets:     sub,
		HeaderWords:       w >> 24 & 0x7F,
		BufferPow2:        w>>31 != 0,
	}
}

// Pow2 reports whether n is a power of two in [4, 2^31], the range the
// fingerprint's pow-2 flag covers.
func Pow2(n uint32) bool {
	return n >= 4 && n&(n-1) == 0
}
